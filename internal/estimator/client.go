package estimator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/form-coach/go-evaluator/gen/posepb"
	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/pose"
)

// #region types
// StreamParams configures one landmark streaming session against the
// MediaPipe sidecar.
type StreamParams struct {
	VideoPath              string
	MinDetectionConfidence float32
	MinTrackingConfidence  float32
}

// DefaultStreamParams returns the sidecar's stock confidence thresholds.
func DefaultStreamParams(videoPath string) StreamParams {
	return StreamParams{
		VideoPath:              videoPath,
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
	}
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python pose-estimation service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PoseEstimatorClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the Python pose-estimation gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewPoseEstimatorClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PoseEstimatorClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region stream
// StreamLandmarks opens the landmark stream and invokes handle once per
// received frame, in stream order, until the sidecar finishes the video.
// Frames arrive unvalidated; the rule engine decides what a bad landmark
// count means. A handler error stops consumption and is returned as-is.
func (c *Client) StreamLandmarks(ctx context.Context, params StreamParams, handle func(pose.Frame) error) error {
	stream, err := c.client.StreamLandmarks(ctx, &pb.StreamRequest{
		VideoPath:              params.VideoPath,
		MinDetectionConfidence: params.MinDetectionConfidence,
		MinTrackingConfidence:  params.MinTrackingConfidence,
	})
	if err != nil {
		return fmt.Errorf("stream landmarks rpc: %w", err)
	}

	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream recv: %w", err)
		}
		if err := handle(toFrame(msg)); err != nil {
			return err
		}
	}
}

// toFrame converts a wire frame to the domain representation.
func toFrame(msg *pb.LandmarkFrame) pose.Frame {
	landmarks := make([]pose.Landmark, len(msg.Landmarks))
	for i, lm := range msg.Landmarks {
		landmarks[i] = pose.Landmark{
			X:          float64(lm.X),
			Y:          float64(lm.Y),
			Visibility: float64(lm.Visibility),
		}
	}
	return pose.Frame{Index: int(msg.FrameIndex), Landmarks: landmarks}
}

// #endregion stream
