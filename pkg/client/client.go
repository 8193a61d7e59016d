// Package client provides the Go client for the bessd control API.
package client

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/openbess/bessd/api/proto"
)

// Client wraps the generated stub with connection management and error
// folding.
type Client struct {
	pb.BESSControlClient

	conn *grpc.ClientConn
}

// Dial connects to a bessd control endpoint. The control API binds loopback;
// transport security is out of scope.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{
		BESSControlClient: pb.NewBESSControlClient(conn),
		conn:              conn,
	}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// responseError is satisfied by every response message carrying an embedded
// Error.
type responseError interface {
	GetError() *pb.Error
}

// CheckResponse folds a response-embedded error into a Go error. Domain
// failures ride inside the response; the transport status is OK.
func CheckResponse(resp responseError) error {
	e := resp.GetError()
	if e.GetErr() == 0 {
		return nil
	}
	return fmt.Errorf("%s (errno %d)", e.GetErrmsg(), e.GetErr())
}
