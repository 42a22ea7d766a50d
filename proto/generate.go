// Package proto holds the gRPC contract with the detector sidecar.
// Regenerate the stubs after changing detector.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative detector.proto
