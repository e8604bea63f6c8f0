package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/catalog-api/internal/service/auth"
	"github.com/spf13/cobra"
)

// newHashPasswordCmd prints a bcrypt hash for seeding users by hand. The
// password is read from stdin when not given as an argument, keeping it out
// of shell history.
func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := auth.NewBcryptHasher(cost)
			if err != nil {
				return err
			}

			password, err := readPassword(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			hash, err := hasher.Hash(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", auth.MinBcryptCost, "bcrypt cost factor")
	return cmd
}

func readPassword(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
