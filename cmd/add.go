package cmd

import (
	"fmt"

	"github.com/distribution/reference"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/prompt"
	"github.com/hubsync/hubsync/pkg/types"
)

// newAddCommand creates the add subcommand. Values missing from flags are
// gathered interactively; when no tags are given, the registry's tag listing
// is offered for selection.
func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add images and tags to the catalog",
		RunE:  runAdd,
	}

	cmd.Flags().String("library", "", "Registry namespace of the image; empty for official images")
	cmd.Flags().String("name", "", "Repository name of the image to track")
	cmd.Flags().StringSlice("tags", nil, "Tags to track; prompted from the registry listing when omitted")

	return cmd
}

// runAdd resolves an image identity and tag set from flags or prompts and
// unions them into the catalog. Adding the same identity and tags twice
// leaves the catalog unchanged.
func runAdd(cmd *cobra.Command, _ []string) error {
	library, err := resolveLibrary(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		if name, err = prompt.Name(); err != nil {
			return err
		}
	}

	ref := types.NewImageRef(library, name)
	if _, err := reference.ParseNormalizedNamed(ref.String()); err != nil {
		return fmt.Errorf("invalid image name %q: %w", ref, err)
	}

	tags, err := resolveTags(cmd, ref)
	if err != nil {
		return err
	}

	store.MergeTags(ref, tags)

	logrus.WithFields(logrus.Fields{
		"image": ref.String(),
		"tags":  tags,
	}).Info("Added tags to catalog")

	return saveCatalog()
}

// resolveLibrary returns the library from the flag when it was set, even to
// an empty value, and prompts otherwise. An empty answer means the default
// library.
func resolveLibrary(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("library") {
		library, _ := cmd.Flags().GetString("library")

		return library, nil
	}

	return prompt.Library()
}

// resolveTags returns the tags from the flag, or fetches the registry's
// listing for ref and prompts for a selection.
func resolveTags(cmd *cobra.Command, ref types.ImageRef) ([]string, error) {
	if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
		return tags, nil
	}

	listing, err := tagClient.FetchTags(cmd.Context(), ref)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(listing))
	for _, descriptor := range listing {
		names = append(names, descriptor.Name)
	}

	return prompt.SelectTags(names)
}
