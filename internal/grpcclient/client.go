// Package grpcclient connects the pipeline to the detector sidecar.
package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/zainabhax0r-dev/facescan-pro/internal/biometric"
	"github.com/zainabhax0r-dev/facescan-pro/internal/detector"
	"github.com/zainabhax0r-dev/facescan-pro/internal/logging"
	proto "github.com/zainabhax0r-dev/facescan-pro/proto"
)

// DialDetector returns a ready-to-use client for the detection backend.
// A backend that cannot be reached here is fatal to starting sessions;
// the caller may retry by restarting.
func DialDetector(ctx context.Context, addr string, logger *zap.Logger) (detector.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_detector", "", err)
		logger.Error("failed to dial detector backend", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewDetectorClient(conn)
	return &grpcDetector{client: client, logger: logger}, conn, nil
}

type grpcDetector struct {
	client proto.DetectorClient
	logger *zap.Logger
}

func (g *grpcDetector) Detect(ctx context.Context, frame []byte) (*detector.Detection, error) {
	resp, err := g.client.Detect(ctx, &proto.DetectRequest{FrameData: frame})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.detect", "", err)
		g.logger.Error("detector call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	if !resp.GetFaceFound() {
		return &detector.Detection{FaceFound: false}, nil
	}

	landmarks := make(biometric.LandmarkSet, 0, len(resp.GetLandmarks()))
	for _, lm := range resp.GetLandmarks() {
		landmarks = append(landmarks, biometric.Point{X: float64(lm.GetX()), Y: float64(lm.GetY())})
	}

	box := resp.GetBox()
	return &detector.Detection{
		FaceFound:  true,
		Confidence: float64(resp.GetConfidence()),
		Crop: biometric.Crop{
			Width:  int(resp.GetCropWidth()),
			Height: int(resp.GetCropHeight()),
			Pix:    resp.GetCrop(),
		},
		Landmarks: landmarks,
		Box: biometric.BoundingBox{
			X1: float64(box.GetX1()),
			Y1: float64(box.GetY1()),
			X2: float64(box.GetX2()),
			Y2: float64(box.GetY2()),
		},
	}, nil
}
