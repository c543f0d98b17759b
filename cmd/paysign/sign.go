package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/csob/internal/entity"
	"github.com/samandr77/microservices/csob/pkg/config"
	"github.com/samandr77/microservices/csob/pkg/security"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Prepare an order and print the signed payload as JSON",
		RunE:  runSign,
	}

	cmd.Flags().StringP("file", "f", "", "Order JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func stringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Prepare an order and print the text its signature covers",
		RunE:  runString,
	}

	cmd.Flags().StringP("file", "f", "", "Order JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSign(cmd *cobra.Command, _ []string) error {
	cfg, pp, err := prepareFromFlags(cmd)
	if err != nil {
		return err
	}

	signer, err := security.NewSigner(cfg.Merchant.SignatureHash)
	if err != nil {
		return err
	}

	payload, err := pp.SignAndExport(cfg.Merchant.Entity(), signer.SignString)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(payload)
}

func runString(cmd *cobra.Command, _ []string) error {
	_, pp, err := prepareFromFlags(cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), pp.SignatureString())

	return err
}

func prepareFromFlags(cmd *cobra.Command) (config.Config, *entity.PreparedPayment, error) {
	envPath, err := cmd.Flags().GetString("env")
	if err != nil {
		return config.Config{}, nil, err
	}

	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.New(envPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("read order: %w", err)
	}

	var o entity.Order

	err = json.Unmarshal(data, &o)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("decode order: %w", err)
	}

	req, err := o.Request()
	if err != nil {
		return config.Config{}, nil, err
	}

	pp, err := req.Prepare(cfg.Merchant.Entity(), time.Now())
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, pp, nil
}
