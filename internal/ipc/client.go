package ipc

import (
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"
)

const serviceName = "Dscp"

// Client provides RPC access to the DSCP control service.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the control service at the given endpoint. Accepted
// forms are "host:port", "tcp://host:port" and "unix:///path/to/socket".
func Dial(endpoint string) (*Client, error) {
	network, address, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialTimeout(network, address, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// ParseEndpoint splits an endpoint string into a network and an address
// suitable for net.Dial.
func ParseEndpoint(endpoint string) (network, address string, err error) {
	endpoint = strings.TrimSpace(endpoint)
	switch {
	case endpoint == "":
		return "", "", fmt.Errorf("endpoint is empty")
	case strings.HasPrefix(endpoint, "unix://"):
		return "unix", strings.TrimPrefix(endpoint, "unix://"), nil
	case strings.HasPrefix(endpoint, "tcp://"):
		return "tcp", strings.TrimPrefix(endpoint, "tcp://"), nil
	case strings.Contains(endpoint, "://"):
		return "", "", fmt.Errorf("endpoint %q: unsupported scheme", endpoint)
	default:
		return "tcp", endpoint, nil
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// ListConfigs returns the configurations known per dataplane instance.
func (c *Client) ListConfigs() (*ListConfigsResponse, error) {
	var resp ListConfigsResponse
	if err := c.client.Call(serviceName+".ListConfigs", ListConfigsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ShowConfig returns the state of a single target.
func (c *Client) ShowConfig(req ShowConfigRequest) (*ShowConfigResponse, error) {
	var resp ShowConfigResponse
	if err := c.client.Call(serviceName+".ShowConfig", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddPrefixes appends prefixes to a target's input filter.
func (c *Client) AddPrefixes(req AddPrefixesRequest) (*AddPrefixesResponse, error) {
	var resp AddPrefixesResponse
	if err := c.client.Call(serviceName+".AddPrefixes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemovePrefixes removes prefixes from a target's input filter.
func (c *Client) RemovePrefixes(req RemovePrefixesRequest) (*RemovePrefixesResponse, error) {
	var resp RemovePrefixesResponse
	if err := c.client.Call(serviceName+".RemovePrefixes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetMarking replaces a target's marking policy.
func (c *Client) SetMarking(req SetMarkingRequest) (*SetMarkingResponse, error) {
	var resp SetMarkingResponse
	if err := c.client.Call(serviceName+".SetMarking", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
