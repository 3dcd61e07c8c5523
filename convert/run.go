package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylc/css"
	"stylc/sheet"
	"stylc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	check := env.Cfg.Build.CheckOutput || cmd.Bool("check")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read style document %q: %w", src, err)
	}
	// snapshot the input as it was compiled, it may change before the report closes
	if err := env.Rpt.StoreCopy("input"+filepath.Ext(src), src); err != nil {
		log.Warn("Unable to snapshot input document for the report", zap.Error(err))
	}

	text, err := process(data, check, env.Cfg.Build.RelaxedClasses, log)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output.css", []byte(text))

	if len(dst) == 0 {
		_, err = os.Stdout.WriteString(text)
		return err
	}
	return writeOutput(dst, text, env.Overwrite)
}

// process compiles a style document to stylesheet text independently of the
// CLI framework.
func process(data []byte, check, relaxed bool, log *zap.Logger) (string, error) {
	doc, err := ParseDocument(data, log)
	if err != nil {
		return "", err
	}

	var opts []sheet.Option
	if relaxed {
		opts = append(opts, sheet.RelaxedUse())
	}
	reg := sheet.New(log, opts...)

	for _, face := range doc.FontFaces {
		reg.FontFace(face)
	}
	for _, raw := range doc.Raw {
		reg.Raw(raw)
	}

	comp := css.NewCompiler(log)

	// Document keyframes keep their literal names so rules can reference them,
	// unlike registry keyframes which get suffixed names.
	for _, kf := range doc.Keyframes {
		reg.Raw(comp.KeyframesBlock(kf.Name, kf.Frames))
	}
	for _, st := range doc.Styles {
		reg.Style(st.Name, st.Style)
	}

	parts := []string{}
	if out := reg.Render(); len(out) > 0 {
		parts = append(parts, out)
	}
	parts = append(parts, comp.Compile(doc.Rules)...)

	text := strings.Join(parts, "\n")
	if len(text) > 0 {
		text += "\n"
	}

	if check {
		if err := css.Check(text); err != nil {
			return "", fmt.Errorf("emitted stylesheet failed verification: %w", err)
		}
		log.Debug("Emitted stylesheet verified")
	}
	return text, nil
}

func writeOutput(dst, text string, overwrite bool) error {
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("output file %q already exists, use --ow to overwrite", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write output file %q: %w", dst, err)
	}
	return nil
}
