package commands

import (
	"github.com/spf13/cobra"
)

// encrypt <plaintext>: print the ciphertext of a string, or with --json the
// encrypted form of a JSON value.
func encryptCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt a string or, with --json, every string in a JSON value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				v, err := rt.readValue(args, 0)
				if err != nil {
					return err
				}
				return rt.printValue(rt.client.EncryptTree(v))
			}

			plain, err := rt.readText(args)
			if err != nil {
				return err
			}
			return rt.printLine(rt.client.Encrypt(plain))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "treat the input as a JSON value")
	return cmd
}

// decrypt <ciphertext>: print the plaintext, or with --json decrypt every
// string in a JSON value and keep those that do not decrypt.
func decryptCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a ciphertext or, with --json, every string in a JSON value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				v, err := rt.readValue(args, 0)
				if err != nil {
					return err
				}
				return rt.printValue(rt.client.DecryptTree(v))
			}

			ciphertext, err := rt.readText(args)
			if err != nil {
				return err
			}
			plain, err := rt.client.Decrypt(ciphertext)
			if err != nil {
				return err
			}
			return rt.printLine(plain)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "treat the input as a JSON value")
	return cmd
}
