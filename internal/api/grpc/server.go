package grpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	pb "github.com/spec-kit/worker-directory/api/proto"
	"github.com/spec-kit/worker-directory/internal/api/dto"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/config"
	"github.com/spec-kit/worker-directory/internal/service"
	apperrors "github.com/spec-kit/worker-directory/pkg/util"
)

// WorkerServer exposes the worker service over the RPC transport. Both
// transports share the same service layer, so behavior stays identical down
// to the error classes.
type WorkerServer struct {
	pb.UnimplementedWorkerAPIServer
	service *service.WorkerService
	logger  *zap.Logger
}

// NewWorkerServer constructs the RPC surface on top of the shared service.
func NewWorkerServer(svc *service.WorkerService, logger *zap.Logger) *WorkerServer {
	return &WorkerServer{service: svc, logger: logger}
}

func (s *WorkerServer) Create(ctx context.Context, req *pb.CreateReq) (*pb.DefaultRes, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.service.Create(ctx, actor, dto.CreateWorkerRequest{
		CardID:    req.GetCardId(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
		Email:     req.GetEmail(),
	})
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.DefaultRes{Data: toProto(created)}, nil
}

func (s *WorkerServer) GetById(ctx context.Context, req *pb.GetByIdReq) (*pb.DefaultRes, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	worker, err := s.service.GetByID(ctx, actor, req.GetId())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.DefaultRes{Data: toProto(worker)}, nil
}

func (s *WorkerServer) GetByCardId(ctx context.Context, req *pb.GetByCardIdReq) (*pb.DefaultRes, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	worker, err := s.service.GetByCardID(ctx, actor, req.GetCardId())
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.DefaultRes{Data: toProto(worker)}, nil
}

func (s *WorkerServer) UpdateById(ctx context.Context, req *pb.UpdateByIdReq) (*pb.DefaultRes, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	// Proto3 scalar fields cannot distinguish "absent" from "empty", so an
	// empty string means the field was not sent.
	patch := dto.UpdateWorkerRequest{}
	if v := req.GetCardId(); v != "" {
		patch.CardID = &v
	}
	if v := req.GetFirstName(); v != "" {
		patch.FirstName = &v
	}
	if v := req.GetLastName(); v != "" {
		patch.LastName = &v
	}
	if v := req.GetEmail(); v != "" {
		patch.Email = &v
	}

	worker, err := s.service.UpdateByID(ctx, actor, req.GetId(), patch)
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.DefaultRes{Data: toProto(worker)}, nil
}

func (s *WorkerServer) DeleteById(ctx context.Context, req *pb.DeleteByIdReq) (*pb.DeleteByIdRes, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.service.DeleteByID(ctx, actor, req.GetId()); err != nil {
		return nil, rpcError(err)
	}
	return &pb.DeleteByIdRes{Status: "Success"}, nil
}

// actor pulls the gate-attached actor off the call context. A missing actor
// means the interceptor was bypassed, which is a wiring fault.
func (s *WorkerServer) actor(ctx context.Context) (auth.Actor, error) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		s.logger.Error("call reached handler without actor")
		return auth.Actor{}, status.Error(codes.Unauthenticated, "Bad bearer.")
	}
	return actor, nil
}

func toProto(w dto.WorkerResponse) *pb.Worker {
	return &pb.Worker{
		Id:        w.ID,
		CardId:    w.CardID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
	}
}

// rpcError maps the shared error classes onto gRPC status codes.
func rpcError(err error) error {
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		return status.Error(codes.Internal, "Internal error.")
	}
	switch de.HTTPStatus {
	case http.StatusUnauthorized:
		return status.Error(codes.Unauthenticated, de.Message)
	case http.StatusForbidden:
		return status.Error(codes.PermissionDenied, de.Message)
	case http.StatusBadRequest:
		return status.Error(codes.InvalidArgument, de.Message)
	default:
		return status.Error(codes.Internal, de.Message)
	}
}

// Server owns the RPC listener lifecycle.
type Server struct {
	grpc   *grpc.Server
	cfg    config.GRPCConfig
	logger *zap.Logger
}

// NewServer wires the interceptor chain, TLS material, and service
// registration into a ready-to-serve RPC server.
func NewServer(cfg config.GRPCConfig, worker *WorkerServer, resolver auth.Resolver, logger *zap.Logger) (*Server, error) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(resolver, logger)),
	}

	if cfg.TLSEnabled() {
		creds, err := serverCredentials(cfg)
		if err != nil {
			return nil, fmt.Errorf("load tls credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	srv := grpc.NewServer(opts...)
	pb.RegisterWorkerAPIServer(srv, worker)

	return &Server{grpc: srv, cfg: cfg, logger: logger}, nil
}

// Serve blocks on the listener until Stop is called.
func (s *Server) Serve() error {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}

	s.logger.Info("rpc server listening",
		zap.String("address", s.cfg.Addr()),
		zap.Bool("tls", s.cfg.TLSEnabled()),
	)
	return s.grpc.Serve(listener)
}

// Stop drains in-flight calls and shuts the listener down.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
	s.logger.Info("rpc server stopped")
}

func serverCredentials(cfg config.GRPCConfig) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, err
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if cfg.ClientCAFile != "" {
		caPEM, err := os.ReadFile(cfg.ClientCAFile)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no usable certificates in %s", cfg.ClientCAFile)
		}
		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return credentials.NewTLS(tlsCfg), nil
}
