package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quiz/internal/logger"
	"quiz/internal/quizstate"
	"quiz/internal/ui/live"
)

// runLive is swapped in tests.
var runLive = live.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		settings := addSettingsFlags(flags)
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Log debug output to stderr")
		if code, err := parseFlags(cmd, flags, args, stdout, stderr); err != nil {
			return code
		}

		cfg, err := settings.load(flags)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if flagWasSet(flags, "ui") {
			cfg.UI = *uiMode
		}
		if *noColor {
			cfg.NoColor = true
		}
		switch {
		case *verbose:
			cfg.Log.Level = "debug"
		case cfg.Log.File == "":
			cfg.Log.Level = promptLogLevel(cfg.Log.Level)
		}

		front, err := choosePresenter(cfg.UI, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid ui mode: %v\n", err)
			return ExitUsage
		}
		if front.note != "" {
			fmt.Fprintln(stderr, front.note)
		}

		log, err := logger.New(cfg, front.live, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = log.Sync() }()

		questions, err := loadQuestions(cfg.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}
		quiz, err := quizstate.New(questions)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}
		stopLogging := logger.ObserveSession(log, quiz)
		defer stopLogging()

		log.Info("quiz session started",
			zap.String("session_id", quiz.SessionID()),
			zap.Int("questions", quiz.Len()),
			zap.Bool("live", front.live),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if front.live {
			err = runLive(ctx, quiz, stdin, stdout, live.Options{NoColor: cfg.NoColor})
		} else {
			err = runPlain(ctx, quiz, stdin, stdout)
		}
		if err != nil {
			log.Error("quiz session failed", zap.String("session_id", quiz.SessionID()), zap.Error(err))
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}

		outcome := "quiz session ended"
		if ctx.Err() != nil {
			outcome = "quiz session interrupted"
		}
		log.Info(outcome,
			zap.String("session_id", quiz.SessionID()),
			zap.Int("index", quiz.Index()),
		)
		return ExitOK
	}
}

// promptLogLevel raises the level to warn when logs share stderr with the
// prompt. Unparseable levels pass through for logger.New to reject.
func promptLogLevel(level string) string {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil || parsed >= zapcore.WarnLevel {
		return level
	}
	return zapcore.WarnLevel.String()
}
