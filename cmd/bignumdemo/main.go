// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bignumdemo is a reference driver exercising the bignum and rsa
// packages from the command line: generate a key and print its components,
// or generate a key and round-trip a literal decimal plaintext through
// encryption and decryption.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/wyrmwood/bignum"
	"github.com/wyrmwood/bignum/rsa"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bignumdemo",
		Short: "Reference driver for the bignum RSA engine",
	}

	var (
		bits    int
		rounds  int
		workers int
	)

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair and print its components in hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Generating a %d-bit key (%d Miller-Rabin rounds, %d workers)\n", bits, rounds, workers)
			kp, err := rsa.Generate(bits, rounds, workers)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			n, err := kp.Modulus().Text(bignum.Hex)
			if err != nil {
				return err
			}
			e, err := kp.PublicKey().Text(bignum.Hex)
			if err != nil {
				return err
			}
			d, err := kp.PrivateKey().Text(bignum.Hex)
			if err != nil {
				return err
			}
			fmt.Printf("n = %s\n", n)
			fmt.Printf("e = %s\n", e)
			fmt.Printf("d = %s\n", d)
			return nil
		},
	}
	keygenCmd.Flags().IntVar(&bits, "bits", 256, "Total RSA key size in bits (even, >= 64)")
	keygenCmd.Flags().IntVar(&rounds, "rounds", rsa.DefaultMillerRabinRounds, "Miller-Rabin witness rounds")
	keygenCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Worker goroutines for prime search")

	var plaintext string

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Generate a key and round-trip a literal decimal plaintext through it",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := rsa.Generate(bits, rounds, workers)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			plain, err := bignum.New().Parse(plaintext, bignum.Decimal)
			if err != nil {
				return fmt.Errorf("parsing plaintext: %w", err)
			}
			cipher, err := kp.Encrypt(plain)
			if err != nil {
				return fmt.Errorf("encrypting: %w", err)
			}
			cipherText, err := cipher.Text(bignum.Decimal)
			if err != nil {
				return err
			}
			fmt.Printf("cipher = %s\n", cipherText)

			recovered, err := kp.Decrypt(cipher)
			if err != nil {
				return fmt.Errorf("decrypting: %w", err)
			}
			recoveredText, err := recovered.Text(bignum.Decimal)
			if err != nil {
				return err
			}
			fmt.Printf("recovered = %s\n", recoveredText)
			if recoveredText != plaintext {
				return fmt.Errorf("round trip mismatch: got %s, want %s", recoveredText, plaintext)
			}
			fmt.Println("round trip OK")
			return nil
		},
	}
	encryptCmd.Flags().IntVar(&bits, "bits", 256, "Total RSA key size in bits (even, >= 64)")
	encryptCmd.Flags().IntVar(&rounds, "rounds", rsa.DefaultMillerRabinRounds, "Miller-Rabin witness rounds")
	encryptCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Worker goroutines for prime search")
	encryptCmd.Flags().StringVar(&plaintext, "plaintext", "42", "Decimal plaintext to round-trip")

	rootCmd.AddCommand(keygenCmd, encryptCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
