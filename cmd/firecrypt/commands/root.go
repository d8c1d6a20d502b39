package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-fire-crypt/internal/client"
	"github.com/MKhiriev/go-fire-crypt/internal/config"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/internal/utils"
	"github.com/MKhiriev/go-fire-crypt/models"
	"github.com/spf13/cobra"
)

// ClientFactory builds the facade once configuration is known.
type ClientFactory func(cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error)

// DefaultClientFactory builds a [client.App].
func DefaultClientFactory(cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error) {
	return client.NewApp(cfg, log)
}

type runtime struct {
	flags     *config.StructuredConfig
	requestID string
	newClient ClientFactory
	build     models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	client client.Client
	logger *logger.Logger
}

// NewRootCmd assembles the command tree. The streams are used instead of the
// process ones so the tree can be driven from tests.
func NewRootCmd(newClient ClientFactory, build models.AppBuildInfo, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rt := &runtime{
		newClient: newClient,
		build:     build,
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
	}

	root := &cobra.Command{
		Use:           "firecrypt",
		Short:         "Field-level encryption for Firestore and Realtime Database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || !cmd.Runnable() {
				return nil
			}
			if err := rt.setup(); err != nil {
				return err
			}
			rt.attachContext(cmd)
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	rt.flags = config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&rt.requestID, "request-id", "", "X-Request-Id sent with store requests (generated when empty)")

	root.AddCommand(
		encryptCmd(rt),
		decryptCmd(rt),
		docCmd(rt),
		treeCmd(rt),
		versionCmd(rt),
	)
	return root
}

// Execute runs the command tree with args against the given streams.
func Execute(ctx context.Context, args []string, build models.AppBuildInfo, stdin io.Reader, stdout, stderr io.Writer) error {
	root := NewRootCmd(DefaultClientFactory, build, stdin, stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (rt *runtime) setup() error {
	cfg, err := config.GetStructuredConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewLoggerWithWriter(rt.stderr, "firecrypt").WithLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidLogConfigs, err)
	}
	rt.logger = log

	rt.client, err = rt.newClient(cfg, log)
	if err != nil {
		return err
	}
	return nil
}

// attachContext makes the request id and the command logger visible to the
// store calls made by cmd.
func (rt *runtime) attachContext(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rt.requestID != "" {
		ctx = utils.WithRequestID(ctx, rt.requestID)
	}

	log := rt.logger.With().Str("command", cmd.CommandPath()).Logger()
	cmd.SetContext(log.WithContext(ctx))
}

// readValue parses the JSON value in args[idx], or stdin when args is
// shorter.
func (rt *runtime) readValue(args []string, idx int) (models.Value, error) {
	var raw []byte
	if idx < len(args) {
		raw = []byte(args[idx])
	} else {
		data, err := io.ReadAll(rt.stdin)
		if err != nil {
			return models.Value{}, fmt.Errorf("read stdin: %w", err)
		}
		raw = data
	}
	return models.ParseJSON(bytes.TrimSpace(raw))
}

func (rt *runtime) printValue(v models.Value) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.stdout, string(raw))
	return err
}

func (rt *runtime) printLine(s string) error {
	_, err := fmt.Fprintln(rt.stdout, s)
	return err
}

// readText returns args[0], or stdin without its trailing newline.
func (rt *runtime) readText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(rt.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
