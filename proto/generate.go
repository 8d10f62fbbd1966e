// Package proto holds the wire contracts. Generated code lands in
// per-service subdirectories and is not committed.
//
//go:generate protoc --go_out=../.. --go-grpc_out=../.. connect.proto
//go:generate protoc --go_out=../.. --go-grpc_out=../.. channel.proto
//go:generate protoc --go_out=../.. account.proto
package proto
