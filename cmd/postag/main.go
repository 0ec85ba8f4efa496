// Command postag projects, lists and encodes part-of-speech tags.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/cours-de-latin/postag"
	"github.com/cours-de-latin/postag/codec"
	"github.com/cours-de-latin/postag/config"
	"github.com/cours-de-latin/postag/internal/logging"
	"github.com/cours-de-latin/postag/treebank"
	"github.com/cours-de-latin/postag/universal"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level for diagnostics on stderr"`

	Project ProjectCmd `cmd:"" help:"Project treebank tags onto the universal tagset"`
	List    ListCmd    `cmd:"" help:"List the tags of a tagset"`
	Encode  EncodeCmd  `cmd:"" help:"Encode tags with a serialization codec"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ProjectCmd prints one "TAG<TAB>UNIVERSAL" line per argument.
type ProjectCmd struct {
	Tags []string `arg:"" help:"Treebank labels, e.g. NNP VBD"`
}

func (c *ProjectCmd) Run(ctx *kong.Context, log *zap.Logger) error {
	var failed int
	for _, label := range c.Tags {
		t, err := treebank.Parse(label)
		if err != nil {
			log.Warn("skipping tag", zap.String("tag", label), zap.Error(err))
			failed++
			continue
		}
		fmt.Fprintf(ctx.Stdout, "%s\t%s\n", t.Label(), t.Universal().Label())
	}
	log.Debug("projected", zap.Int("tags", len(c.Tags)-failed), zap.Int("unknown", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d tags: %w", failed, len(c.Tags), postag.ErrUnknownTag)
	}
	return nil
}

// ListCmd prints a tagset as a table.
type ListCmd struct {
	Tagset string `arg:"" enum:"universal,treebank" help:"Tagset to list (universal or treebank)"`
}

func (c *ListCmd) Run(ctx *kong.Context) error {
	w := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	switch c.Tagset {
	case postag.TagsetUniversal:
		fmt.Fprintln(w, "LABEL\tNAME\tEXAMPLES")
		for _, u := range universal.All() {
			fmt.Fprintf(w, "%s\t%s\t%q\n", u.Label(), u.Name(), u.Examples())
		}
	default:
		fmt.Fprintln(w, "LABEL\tNAME\tUNIVERSAL\tDESCRIPTION")
		for _, t := range treebank.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Label(), t.Name(), t.Universal().Label(), t.Description())
		}
	}
	return w.Flush()
}

// EncodeCmd encodes its arguments as one list.
type EncodeCmd struct {
	Tagset   string   `default:"treebank" enum:"universal,treebank" help:"Tagset of the arguments"`
	Format   string   `default:"json" enum:"json,yaml,msgpack" help:"Output format"`
	Encoding string   `default:"label" enum:"label,name,ordinal" help:"How each tag is written"`
	Tags     []string `arg:"" help:"Tag labels or names"`
}

func (c *EncodeCmd) Run(ctx *kong.Context) error {
	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	e, err := codec.ParseEncoding(c.Encoding)
	if err != nil {
		return err
	}
	cd, err := codec.New(f, e)
	if err != nil {
		return err
	}

	var data []byte
	switch c.Tagset {
	case postag.TagsetUniversal:
		tags := make([]universal.Tag, 0, len(c.Tags))
		for _, s := range c.Tags {
			u, err := universal.Parse(s)
			if err != nil {
				return err
			}
			tags = append(tags, u)
		}
		data, err = codec.EncodeAll(cd, tags)
	default:
		tags := make([]treebank.Tag, 0, len(c.Tags))
		for _, s := range c.Tags {
			t, err := treebank.Parse(s)
			if err != nil {
				return err
			}
			tags = append(tags, t)
		}
		data, err = codec.EncodeAll(cd, tags)
	}
	if err != nil {
		return err
	}

	if f == codec.MsgPack {
		_, err = fmt.Fprintln(ctx.Stdout, hex.EncodeToString(data))
		return err
	}
	_, err = ctx.Stdout.Write(data)
	if err == nil && (len(data) == 0 || data[len(data)-1] != '\n') {
		_, err = fmt.Fprintln(ctx.Stdout)
	}
	return err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "postag %s (%d universal, %d treebank tags)\n",
		version, universal.Count, treebank.Count)
	return err
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("postag"),
		kong.Description("Universal and Penn Treebank part-of-speech tags"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	log, err := logging.New(config.Log{Level: cli.LogLevel, Development: true})
	parser.FatalIfErrorf(err)
	defer log.Sync() //nolint:errcheck

	err = ctx.Run(ctx, log)
	if errors.Is(err, postag.ErrUnknownTag) {
		fmt.Fprintln(os.Stderr, "postag:", err)
		os.Exit(2)
	}
	ctx.FatalIfErrorf(err)
}
