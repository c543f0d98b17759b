package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/csob/pkg/security"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64 signature of a message with a PEM public key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pubFile, _ := cmd.Flags().GetString("pub")
			message, _ := cmd.Flags().GetString("message")
			signature, _ := cmd.Flags().GetString("signature")
			hash, _ := cmd.Flags().GetString("hash")

			pub, err := security.ParsePublicKeyFromFile(pubFile)
			if err != nil {
				return err
			}

			signer, err := security.NewSigner(hash)
			if err != nil {
				return err
			}

			err = signer.Verify(pub, message, signature)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "signature OK")

			return err
		},
	}

	cmd.Flags().String("pub", "", "PEM public key file")
	cmd.Flags().StringP("message", "m", "", "Signed message")
	cmd.Flags().StringP("signature", "s", "", "Base64 signature")
	cmd.Flags().String("hash", "sha1", "Signature hash: sha1 or sha256")

	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}
