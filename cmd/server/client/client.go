// Package client provides commands that call a running trait-forge gRPC server
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the trait-forge server",
	Long:  `Client commands make real gRPC requests against a running trait-forge server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Request timeout")

	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(getRunCmd)
	ClientCmd.AddCommand(getTokenCmd)
	ClientCmd.AddCommand(listRunsCmd)
}

// createGeneratorClient creates a generator service client
func createGeneratorClient() (v1alpha1.GeneratorServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGeneratorServiceClient(conn), cleanup, nil
}

// printResponse decodes a response into out and prints it as indented JSON
func printResponse(resp *structpb.Struct, out interface{}) error {
	if err := v1alpha1.Decode(resp, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
