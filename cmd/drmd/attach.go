// Attachment and signature commands for the drmd CLI.
package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var attachMimeType string

var attachCmd = &cobra.Command{
	Use:   "attach <file>",
	Short: "Embed a file in the document",
	Long: `Embed a file as the document's attachment, replacing any existing
one. The exported document carries at most one embedded file, encoded
as base64. The mime type is guessed from the extension unless --mime is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}

		mimeType := attachMimeType
		if mimeType == "" {
			mimeType = mime.TypeByExtension(filepath.Ext(args[0]))
		}
		if mimeType == "" {
			mimeType = types.DefaultMimeType
		}

		return withCertificate(func(cert *types.Certificate) error {
			cert.SetAttachment(types.Attachment{
				FileName: filepath.Base(args[0]),
				MimeType: mimeType,
				Data:     data,
			})
			return nil
		})
	},
}

var detachCmd = &cobra.Command{
	Use:   "detach",
	Short: "Remove the document's attachment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.RemoveAttachment()
			return nil
		})
	},
}

var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Stage a signature artifact",
	Long: `Record a signature artifact's filename in the document. No signing
takes place; the exported document carries only the filename in its
signature placeholder. An empty argument is rejected; use "sign --clear"
to unstage.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clear, _ := cmd.Flags().GetBool("clear")
		if !clear && len(args) == 0 {
			return fmt.Errorf("a signature filename or --clear is required")
		}
		return withCertificate(func(cert *types.Certificate) error {
			if clear {
				cert.SignatureFile = ""
				return nil
			}
			cert.SignatureFile = filepath.Base(args[0])
			return nil
		})
	},
}

func init() {
	attachCmd.Flags().StringVar(&attachMimeType, "mime", "", "mime type (default: guessed from extension)")
	signCmd.Flags().Bool("clear", false, "unstage the signature artifact")
}
