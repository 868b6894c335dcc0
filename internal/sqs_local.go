package internal

import (
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/ory/dockertest"
)

var ErrPortNotOpen = errors.New("port_is_not_open")

func PortActive(network, address string, timeout int) error {
	for i := 0; i < timeout; i++ {
		s, err := net.DialTimeout(network, address, time.Second)
		if err == nil {
			s.Close()
			return nil
		}
		time.Sleep(time.Second)
	}
	return ErrPortNotOpen
}

// SQSStart runs an ElasticMQ container and returns an SQS client pointed at
// it. The test is skipped under -short or when no Docker daemon answers.
func SQSStart(t *testing.T) (func(), *sqs.SQS) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping SQS integration test in short mode")
	}

	os.Setenv("AWS_REGION", "us-east-1")
	os.Setenv("AWS_ACCESS_KEY_ID", "x")
	os.Setenv("AWS_SECRET_ACCESS_KEY", "x")

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Could not connect to docker: %s\n", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Docker is not reachable: %s\n", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository:   "softwaremill/elasticmq-native",
		Tag:          "latest",
		ExposedPorts: []string{"9324"},
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s\n", err)
	}

	closer := func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatal(err)
		}
	}

	err = PortActive("tcp", resource.GetHostPort("9324/tcp"), 30)
	if err != nil {
		closer()
		t.Fatalf("Could not connect to resource: %s\n", resource.GetHostPort("9324/tcp"))
	}

	client := sqs.New(
		session.New(),
		&aws.Config{
			Endpoint: aws.String("http://" + resource.GetHostPort("9324/tcp")),
		},
	)

	return closer, client
}
