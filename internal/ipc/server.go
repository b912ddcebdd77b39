package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"dscpctl/internal/logging"
)

// Backend is the server-side contract of the DSCP control service. The
// control service implements it against the dataplane; tests implement it
// in memory.
type Backend interface {
	ListConfigs() ([]InstanceConfigs, error)
	ShowConfig(target Target) (*ShowConfigResponse, error)
	AddPrefixes(target Target, prefixes []string) error
	RemovePrefixes(target Target, prefixes []string) error
	SetMarking(target Target, marking Marking) error
}

// Server exposes a Backend over JSON-RPC on a Unix socket or TCP listener.
type Server struct {
	network   string
	address   string
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures a server listening at the given endpoint.
func NewServer(ctx context.Context, endpoint string, backend Backend, logger *slog.Logger) (*Server, error) {
	if backend == nil {
		return nil, errors.New("ipc server requires a backend")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	network, address, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if network == "unix" {
		if err := os.RemoveAll(address); err != nil {
			return nil, fmt.Errorf("remove existing socket: %w", err)
		}
	}

	listener, err := net.Listen(network, address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", endpoint, err)
	}

	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName(serviceName, &service{backend: backend}); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		network:   network,
		address:   address,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("address", s.address))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes a Unix socket file if one was created.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if s.network == "unix" {
		if err := os.RemoveAll(s.address); err != nil {
			s.logger.Warn("failed to remove socket",
				logging.String("address", s.address),
				logging.Error(err))
		}
	}
}

type service struct {
	backend Backend
}

func (s *service) ListConfigs(_ ListConfigsRequest, resp *ListConfigsResponse) error {
	configs, err := s.backend.ListConfigs()
	if err != nil {
		return err
	}
	resp.InstanceConfigs = configs
	return nil
}

func (s *service) ShowConfig(req ShowConfigRequest, resp *ShowConfigResponse) error {
	state, err := s.backend.ShowConfig(req.Target)
	if err != nil {
		return err
	}
	if state != nil {
		*resp = *state
	}
	return nil
}

func (s *service) AddPrefixes(req AddPrefixesRequest, _ *AddPrefixesResponse) error {
	return s.backend.AddPrefixes(req.Target, req.Prefixes)
}

func (s *service) RemovePrefixes(req RemovePrefixesRequest, _ *RemovePrefixesResponse) error {
	return s.backend.RemovePrefixes(req.Target, req.Prefixes)
}

func (s *service) SetMarking(req SetMarkingRequest, _ *SetMarkingResponse) error {
	return s.backend.SetMarking(req.Target, req.Marking)
}
