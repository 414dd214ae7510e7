package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"thirdcoast.systems/hardsub/internal/config"
	"thirdcoast.systems/hardsub/pkg/ffmpeg"
)

var version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hardsub <input video> <subtitle file> <output path>",
	Short: "Burn subtitles into video files with ffmpeg",
	Long: "hardsub re-encodes a video with a subtitle track rendered into the\n" +
		"frames, deriving the codec and bitrate from the source via ffprobe.",
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBurn(cmd.Context(), args[0], args[1], args[2])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("hardsub %s\n", rootCmd.Version)
	},
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.Version = resolveVersion()
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(thumbCmd)
	rootCmd.AddCommand(remuxCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg = conf

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ffmpeg.BinPath = cfg.FFmpegPath
	ffmpeg.DefaultProber.Path = cfg.FFprobePath

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(exitStatus(err))
	}
}

// opContext bounds an operation with the configured timeout. A zero
// timeout waits indefinitely.
func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if cfg.ProcessTimeout > 0 {
		return context.WithTimeout(ctx, cfg.ProcessTimeout)
	}
	return context.WithCancel(ctx)
}

// exitStatus maps a command error onto the process exit code,
// propagating the encoder's own status when there is one.
func exitStatus(err error) int {
	var fe *ffmpeg.Error
	if errors.As(err, &fe) {
		if code := fe.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

func runBurn(ctx context.Context, input, subtitleFile, output string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	slog.Info("probing input", "file", input)
	report, err := ffmpeg.Probe(ctx, input)
	if err != nil {
		return err
	}

	cmd, err := ffmpeg.BurnCommand(report, input, subtitleFile, output)
	if err != nil {
		return err
	}

	// A video stream is guaranteed once BurnCommand succeeds.
	total, haveTotal, _ := report.DurationSeconds()

	progress := make(chan ffmpeg.Progress, 100)
	proc, err := cmd.StartWithProgress(ctx, progress)
	if err != nil {
		return err
	}

	slog.Info("burning subtitles",
		"input", input,
		"subtitles", subtitleFile,
		"output", output,
		"pid", proc.PID(),
	)

	lastPct := -1
	lastLog := time.Time{}
	for p := range progress {
		if !haveTotal || total <= 0 {
			continue
		}
		pct := int(p.OutTimeSeconds() / total * 100)
		if pct < 0 {
			pct = 0
		}
		if pct > 99 {
			pct = 99
		}
		now := time.Now()
		if pct != lastPct && now.Sub(lastLog) > time.Second {
			lastPct = pct
			lastLog = now
			slog.Info("encoding", "percent", pct, "speed", p.Speed, "fps", p.FPS)
		}
	}

	if err := proc.Wait(); err != nil {
		return err
	}

	fmt.Printf("Subtitles burned successfully to %s\n", output)
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}
