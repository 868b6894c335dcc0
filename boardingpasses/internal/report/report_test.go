package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meetupaws/boarding_pass_scanner/boardingpasses/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func seatID(id int) *model.SeatID {
	s := model.SeatID(id)
	return &s
}

func TestBuild(t *testing.T) {

	tests := []struct {
		name   string
		passes []string
		want   model.Report
	}{
		{
			name:   "No passes has neither a maximum nor a missing seat",
			passes: nil,
			want:   model.Report{},
		},
		{
			name:   "Report the highest seat of the example passes",
			passes: []string{"BFFFBBFRRR", "FFFBBBFRRR", "BBFFBBFRLL"},
			want: model.Report{
				MaxSeatID:     seatID(820),
				MissingSeatID: seatID(120),
				Decoded:       3,
			},
		},
		{
			name:   "A full run has no free seat",
			passes: []string{"FFFFFFFLRL", "FFFFFFFLRR", "FFFFFFFRLL"},
			want: model.Report{
				MaxSeatID: seatID(4),
				Decoded:   3,
			},
		},
		{
			name: "Report the free seat between occupied ones",
			// rows 5 and 6 minus seat 47 (row 5, column 7)
			passes: []string{
				"FFFFBFBLLL", "FFFFBFBLLR", "FFFFBFBLRL", "FFFFBFBLRR",
				"FFFFBFBRLL", "FFFFBFBRLR", "FFFFBFBRRL",
				"FFFFBBFLLL", "FFFFBBFLLR",
			},
			want: model.Report{
				MaxSeatID:     seatID(49),
				MissingSeatID: seatID(47),
				Decoded:       9,
			},
		},
		{
			name:   "Count malformed passes as rejected",
			passes: []string{"BFFFBBFRRR", "BFFFBBFRRX", "short"},
			want: model.Report{
				MaxSeatID: seatID(567),
				Decoded:   1,
				Rejected:  2,
			},
		},
		{
			name:   "Only malformed passes",
			passes: []string{"??????????"},
			want: model.Report{
				Rejected: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(zap.NewNop(), tt.passes)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Differences found: (-want,+got)\n%s", diff)
			}
		})
	}
}

func TestBuild_LogsRejectedPasses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	Build(zap.New(core), []string{"BFFFBBFRRR", "nope"})

	rejected := logs.FilterMessage("boarding passes rejected").All()
	require.Len(t, rejected, 1)
	require.Equal(t, int64(1), rejected[0].ContextMap()["rejected"])
	require.Equal(t, int64(2), rejected[0].ContextMap()["received"])
}
