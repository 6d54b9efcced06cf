// Package grpcserver adapts the engine service to the gRPC order-entry API.
// Handlers encode requests into the engine's wire format, submit them through
// the single write path, and decode the resulting report stream back out.
package grpcserver

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "chronos/api/pb"
	"chronos/domain/lob"
	"chronos/sbe"
	"chronos/service"
)

// Server adapts EngineService to gRPC.
type Server struct {
	pb.UnimplementedOrderServiceServer
	svc *service.EngineService
}

func NewServer(svc *service.EngineService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *pb.PlaceOrderRequest,
) (*pb.PlaceOrderResponse, error) {
	if req.Side > 1 {
		return nil, status.Errorf(codes.InvalidArgument, "bad side %d", req.Side)
	}
	if req.OrderType > 1 {
		return nil, status.Errorf(codes.InvalidArgument, "bad order type %d", req.OrderType)
	}
	if req.Quantity == 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}
	if req.OrderType == uint32(lob.OrderTypeLimit) && req.Price <= 0 {
		return nil, status.Error(codes.InvalidArgument, "limit price must be positive")
	}

	cmd := make([]byte, sbe.HeaderLength+sbe.NewOrderSingleBlockLength)
	var hdr sbe.MessageHeaderEncoder
	hdr.Wrap(cmd, 0).
		BlockLength(sbe.NewOrderSingleBlockLength).
		TemplateID(sbe.NewOrderSingleTemplateID).
		SchemaID(sbe.SchemaID).
		Version(sbe.SchemaVersion)

	var enc sbe.NewOrderSingleEncoder
	enc.Wrap(cmd, sbe.HeaderLength).
		OrderID(req.OrderId).
		Price(req.Price).
		ClientID(req.ClientId).
		TimestampNs(0). // the admission stamp is assigned by the service
		InstrumentID(req.InstrumentId).
		Quantity(req.Quantity).
		Side(byte(req.Side)).
		OrderType(byte(req.OrderType))

	seq, reports, err := s.svc.Submit(cmd)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "submit failed: %v", err)
	}

	log.Printf("[grpc] PlaceOrder id=%d side=%s type=%s price=%d qty=%d seq=%d",
		req.OrderId, lob.SideName(byte(req.Side)), lob.OrderTypeName(byte(req.OrderType)),
		req.Price, req.Quantity, seq)

	return &pb.PlaceOrderResponse{
		Seq:     seq,
		Reports: decodeReports(reports),
	}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	cmd := make([]byte, sbe.HeaderLength+sbe.CancelOrderBlockLength)
	var hdr sbe.MessageHeaderEncoder
	hdr.Wrap(cmd, 0).
		BlockLength(sbe.CancelOrderBlockLength).
		TemplateID(sbe.CancelOrderTemplateID).
		SchemaID(sbe.SchemaID).
		Version(sbe.SchemaVersion)

	var enc sbe.CancelOrderEncoder
	enc.Wrap(cmd, sbe.HeaderLength).
		OrderID(req.OrderId).
		ClientID(req.ClientId).
		InstrumentID(req.InstrumentId)

	seq, reports, err := s.svc.Submit(cmd)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "submit failed: %v", err)
	}

	log.Printf("[grpc] CancelOrder id=%d seq=%d", req.OrderId, seq)

	return &pb.CancelOrderResponse{
		Seq:     seq,
		Reports: decodeReports(reports),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	maxLevels := int(req.MaxLevels)
	if maxLevels <= 0 {
		maxLevels = 10
	}

	snap, ok := s.svc.Depth(req.InstrumentId, maxLevels)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown instrument %d", req.InstrumentId)
	}

	resp := &pb.DepthResponse{
		InstrumentId: snap.InstrumentID,
		TimestampNs:  snap.TimestampNs,
	}
	for _, lv := range snap.Bids {
		resp.Bids = append(resp.Bids, &pb.PriceLevel{
			Price:      lv.Price,
			Quantity:   lv.Quantity,
			OrderCount: uint32(lv.OrderCount),
		})
	}
	for _, lv := range snap.Asks {
		resp.Asks = append(resp.Asks, &pb.PriceLevel{
			Price:      lv.Price,
			Quantity:   lv.Quantity,
			OrderCount: uint32(lv.OrderCount),
		})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func decodeReports(stream []byte) []*pb.ExecutionEvent {
	var out []*pb.ExecutionEvent
	var dec sbe.ExecutionReportDecoder
	for off := 0; off+sbe.ReportMessageLength <= len(stream); off += sbe.ReportMessageLength {
		dec.Wrap(stream, off+sbe.HeaderLength)
		out = append(out, &pb.ExecutionEvent{
			OrderId:           dec.OrderID(),
			ExecId:            dec.ExecID(),
			Price:             dec.Price(),
			ClientId:          dec.ClientID(),
			MatchTimestampNs:  dec.MatchTimestampNs(),
			InstrumentId:      dec.InstrumentID(),
			FilledQuantity:    dec.FilledQuantity(),
			RemainingQuantity: dec.RemainingQuantity(),
			Side:              uint32(dec.Side()),
			ExecType:          uint32(dec.ExecType()),
		})
	}
	return out
}
