package commands

import (
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/spf13/cobra"
)

// doc get|put|delete <collection> <id>: encrypted document operations.
func docCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Read and write encrypted documents",
	}

	get := &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Fetch a document and print its decrypted fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := rt.client.Documents()
			if err != nil {
				return err
			}
			v, err := docs.Get(cmd.Context(), documentPath(args))
			if err != nil {
				return err
			}
			return rt.printValue(v)
		},
	}

	put := &cobra.Command{
		Use:   "put <collection> <id> [json-object]",
		Short: "Encrypt and write the given fields of a document",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := rt.client.Documents()
			if err != nil {
				return err
			}
			v, err := rt.readValue(args, 2)
			if err != nil {
				return err
			}
			return docs.Put(cmd.Context(), documentPath(args), v)
		},
	}

	del := &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := rt.client.Documents()
			if err != nil {
				return err
			}
			return docs.Delete(cmd.Context(), documentPath(args))
		},
	}

	cmd.AddCommand(get, put, del)
	return cmd
}

func documentPath(args []string) models.DocumentPath {
	return models.DocumentPath{Collection: args[0], ID: args[1]}
}
