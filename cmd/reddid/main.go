// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

// Command reddid encodes ReddID payloads and signs Reddcoin OP_RETURN transactions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/BoostyLabs/reddid/reddcoin"
	"github.com/BoostyLabs/reddid/reddcoin/boundary"
	"github.com/BoostyLabs/reddid/reddcoin/reddid"
	"github.com/BoostyLabs/reddid/reddcoin/txbuilder"
)

const (
	envPrivateKey = "REDDID_PRIVATE_KEY"
	envVaultKey   = "REDDID_VAULT_KEY"
)

// errFailed is returned when command printed ERR result.
var errFailed = errors.New("command failed")

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// app holds state shared by subcommands.
type app struct {
	cfg    config
	stdout io.Writer
	stderr io.Writer
	engine *boundary.Engine
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: defaultConfig(), stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "reddid",
		Short:         "ReddID payload encoder and Reddcoin OP_RETURN transaction signer",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	a.cfg.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		a.payloadCommand(),
		a.signCommand(),
		a.decodeCommand(),
		a.encryptCommand(),
		a.decryptCommand(),
	)

	return rootCmd
}

func (a *app) setup(fs *pflag.FlagSet) error {
	if err := a.cfg.load(fs); err != nil {
		return err
	}

	networkParams, err := a.cfg.networkParams()
	if err != nil {
		return err
	}

	logs, err := newLoggers(a.stderr, a.cfg.DebugLevel)
	if err != nil {
		return err
	}

	a.engine, err = boundary.New(boundary.Config{
		NetworkParams: networkParams,
		Policy:        a.cfg.policy(),
		Log:           logs.engine,
		TxBuilderLog:  logs.txBuilder,
		SignerLog:     logs.signer,
	})

	return err
}

// print writes tagged result and reports failure for ERR results.
func (a *app) print(tagged string) error {
	fmt.Fprintln(a.stdout, tagged)
	if strings.HasPrefix(tagged, boundary.ErrPrefix) {
		return errFailed
	}

	return nil
}

func (a *app) payloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "payload <command> <identifier>",
		Short: "Encode ReddID OP_RETURN payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.engine.EncodePayload(args[0], args[1]))
		},
	}
}

func (a *app) signCommand() *cobra.Command {
	var (
		params     boundary.SignParams
		command    string
		identifier string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Build and sign OP_RETURN transaction spending one P2PKH output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.PrivateKeyHex == "" {
				params.PrivateKeyHex = os.Getenv(envPrivateKey)
			}
			if params.OpReturnPayloadHex == "" && command != "" {
				payloadHex, err := a.engine.BuildPayload(command, identifier)
				if err != nil {
					return a.print(boundary.Result{Err: err}.String())
				}
				params.OpReturnPayloadHex = payloadHex
			}

			return a.print(a.engine.BuildAndSignTransaction(
				params.PrivateKeyHex, params.UTXOTxID, params.UTXOVout, params.UTXOAmount,
				params.OpReturnPayloadHex, params.ChangeAddress, params.NetworkFee,
			))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&params.PrivateKeyHex, "key", "", "Private key as 64 hex characters, defaults to $"+envPrivateKey)
	fs.StringVar(&params.UTXOTxID, "txid", "", "Transaction id of spent output")
	fs.Uint32Var(&params.UTXOVout, "vout", 0, "Index of spent output")
	fs.Uint64Var(&params.UTXOAmount, "amount", 0, "Value of spent output")
	fs.StringVar(&params.OpReturnPayloadHex, "payload", "", "OP_RETURN payload as hex")
	fs.StringVar(&command, "command", "", "ReddID command, used with --identifier instead of --payload")
	fs.StringVar(&identifier, "identifier", "", "ReddID identifier")
	fs.StringVar(&params.ChangeAddress, "change", "", "Change address or hex public key")
	fs.Uint64Var(&params.NetworkFee, "fee", 0, "Network fee")

	return cmd
}

func (a *app) decodeCommand() *cobra.Command {
	var rawTx bool

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode ReddID payload or signed transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rawTx {
				return a.print(decodeTransaction(args[0]).String())
			}

			payload, err := reddid.DecodeHex(args[0])
			if err != nil {
				return a.print(boundary.Result{Err: err}.String())
			}

			return a.print(boundary.Result{Value: describePayload(payload)}.String())
		},
	}
	cmd.Flags().BoolVar(&rawTx, "tx", false, "Treat input as raw transaction hex")

	return cmd
}

func (a *app) encryptCommand() *cobra.Command {
	var keyHex string

	cmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Encrypt text with AES-256-GCM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.engine.VaultEncrypt(args[0], vaultKey(keyHex)))
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "AES-256 key as 64 hex characters, defaults to $"+envVaultKey)

	return cmd
}

func (a *app) decryptCommand() *cobra.Command {
	var keyHex string

	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext_b64:nonce_b64>",
		Short: "Decrypt text encrypted by encrypt command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.engine.VaultDecrypt(args[0], vaultKey(keyHex)))
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "AES-256 key as 64 hex characters, defaults to $"+envVaultKey)

	return cmd
}

func vaultKey(keyHex string) string {
	if keyHex != "" {
		return keyHex
	}

	return os.Getenv(envVaultKey)
}

// decodeTransaction extracts ReddID payload from raw transaction.
func decodeTransaction(rawHex string) boundary.Result {
	tx, err := txbuilder.DecodeTx(rawHex)
	if err != nil {
		return boundary.Result{Err: err}
	}

	for _, out := range tx.TxOut {
		if txscript.GetScriptClass(out.PkScript) != txscript.NullDataTy {
			continue
		}

		payload, err := reddid.FromScript(out.PkScript)
		if err != nil {
			return boundary.Result{Err: err}
		}

		return boundary.Result{Value: fmt.Sprintf("txid=%s %s", tx.TxHash(), describePayload(payload))}
	}

	return boundary.Result{Err: fmt.Errorf("%w: transaction has no OP_RETURN output", reddcoin.ErrInvalidInput)}
}

func describePayload(payload *reddid.Payload) string {
	return fmt.Sprintf("command=%s identifier=%s", payload.Command, payload.Identifier)
}
