package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image-file>",
		Short: "Identify a photographed figure with Gemini",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			mimeType := imageMIME(image)

			return ctx.withServices(cmd.Context(), func(svcs *appsvcs.Services) error {
				id, err := svcs.Classify.Identify(cmd.Context(), image, mimeType)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Field", "Value"},
					[][]string{
						{"Name", id.Name},
						{"Series", id.Series},
						{"Rarity", string(id.Rarity)},
						{"Confidence", fmt.Sprintf("%.0f%%", id.Confidence*100)},
						{"Description", id.Description},
					},
					nil,
				))
				return nil
			})
		},
	}
}

// imageMIME sniffs the content type, falling back to JPEG for anything that
// is not recognised as an image.
func imageMIME(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	return appsvcs.DefaultImageMIME
}
