// Package debugsvc exposes a Task's call/return trace over gRPC as a
// server-streaming feed of structpb.Struct events, tagged with the
// task's google/uuid identity — an introspection surface the teacher
// has no analogue for (funxy has no RPC layer at all), built per
// SPEC_FULL.md's domain-stack expansion to give grpc/protobuf a real
// home. It deliberately avoids hand-authoring protoc-generated code:
// structpb.Struct is itself a stock generated message from
// google.golang.org/protobuf/types/known/structpb, so the service is
// wired entirely through grpc.ServiceDesc plumbing written by hand,
// the way grpc-go's own streaming examples do for ad hoc services.
package debugsvc

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName and method name used to register/dial the service.
const (
	ServiceName = "glyph.debug.DebugService"
	MethodEvents = "Events"
)

// Event is one call/return trace record. Server's OnCall/OnReturn
// (eval.Sink's two callbacks) push Events to its subscribers instead
// of rendering text (as internal/trace.Logger does).
type Event struct {
	TaskID uuid.UUID
	Label  string
	Depth  int
	Kind   string // "call" or "return"
}

func (e Event) toStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"task_id": e.TaskID.String(),
		"label":   e.Label,
		"depth":   float64(e.Depth),
		"kind":    e.Kind,
	})
}

// Server fans out Events to every currently streaming client. It
// implements eval.Sink directly, so it can be attached to a Task in
// place of (or alongside) internal/trace.Logger.
type Server struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewServer creates an empty Server ready to register on a grpc.Server.
func NewServer() *Server {
	return &Server{subs: make(map[chan Event]struct{})}
}

func (s *Server) OnCall(taskID uuid.UUID, label string, depth int) {
	s.publish(Event{TaskID: taskID, Label: label, Depth: depth, Kind: "call"})
}

func (s *Server) OnReturn(taskID uuid.UUID, label string, depth int) {
	s.publish(Event{TaskID: taskID, Label: label, Depth: depth, Kind: "return"})
}

func (s *Server) publish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default: // a slow subscriber drops events rather than blocking the evaluator
		}
	}
}

func (s *Server) subscribe() chan Event {
	ch := make(chan Event, 64)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan Event) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
	close(ch)
}

// events is the server-streaming handler: it relays every Event
// published after the client connects as a structpb.Struct message,
// until the stream's context is cancelled.
func (s *Server) events(_ interface{}, stream grpc.ServerStream) error {
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return io.EOF
			}
			msg, err := ev.toStruct()
			if err != nil {
				return err
			}
			if err := stream.SendMsg(msg); err != nil {
				return err
			}
		}
	}
}

// DebugServiceServer is the marker interface grpc.Server.RegisterService
// checks an implementation against. It carries no methods because this
// service's only RPC is a raw server-stream handled directly by
// eventsHandler below, not dispatched through a typed method.
type DebugServiceServer interface{}

// ServiceDesc is registered on a *grpc.Server via
// grpcServer.RegisterService(&ServiceDesc, server).
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DebugServiceServer)(nil),
	Streams: []grpc.StreamDesc{
		{
			StreamName:    MethodEvents,
			Handler:       eventsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "internal/debugsvc/debugsvc.proto",
}

func eventsHandler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(*Server).events(srv, stream)
}
