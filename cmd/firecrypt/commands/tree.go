package commands

import (
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/spf13/cobra"
)

// tree get|set|push|update|delete|url <path>: encrypted JSON tree operations.
func treeCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Read and write encrypted JSON subtrees",
	}

	get := &cobra.Command{
		Use:   "get <path>",
		Short: "Fetch a subtree and print it decrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			v, err := tree.Get(cmd.Context(), models.TreePath(args[0]))
			if err != nil {
				return err
			}
			return rt.printValue(v)
		},
	}

	set := &cobra.Command{
		Use:   "set <path> [json]",
		Short: "Encrypt a value and replace the subtree at path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			v, err := rt.readValue(args, 1)
			if err != nil {
				return err
			}
			return tree.Set(cmd.Context(), models.TreePath(args[0]), v)
		},
	}

	push := &cobra.Command{
		Use:   "push <path> [json]",
		Short: "Encrypt a value, append it under path and print the new key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			v, err := rt.readValue(args, 1)
			if err != nil {
				return err
			}
			key, err := tree.Push(cmd.Context(), models.TreePath(args[0]), v)
			if err != nil {
				return err
			}
			return rt.printLine(key)
		},
	}

	update := &cobra.Command{
		Use:   "update <path> [json-object]",
		Short: "Encrypt the given children and merge them into path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			v, err := rt.readValue(args, 1)
			if err != nil {
				return err
			}
			return tree.Update(cmd.Context(), models.TreePath(args[0]), v)
		},
	}

	del := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete the subtree at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			return tree.Delete(cmd.Context(), models.TreePath(args[0]))
		},
	}

	url := &cobra.Command{
		Use:   "url <path>",
		Short: "Print the request URL for path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rt.client.Tree()
			if err != nil {
				return err
			}
			return rt.printLine(tree.BuildURL(models.TreePath(args[0])))
		},
	}

	cmd.AddCommand(get, set, push, update, del, url)
	return cmd
}
