// Package grpc provides the gRPC health endpoint (grpc.health.v1).
package grpc
