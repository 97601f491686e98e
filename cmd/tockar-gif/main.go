// Command tockar-gif renders avatar animations from the command line and
// runs the HTTP rendering service.
package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/dustin/go-humanize"
	"github.com/setanarut/apng"
	"github.com/urfave/cli/v3"

	"github.com/mmenzyns/tockar-discord-bot/anim"
	"github.com/mmenzyns/tockar-discord-bot/assets"
	"github.com/mmenzyns/tockar-discord-bot/config"
	"github.com/mmenzyns/tockar-discord-bot/server"
)

func main() {
	cmd := &cli.Command{
		Name:  "tockar-gif",
		Usage: "composite avatar animations into transparent GIFs",
		Commands: []*cli.Command{
			renderCommand(),
			animationsCommand(),
			serveCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render one animation around an avatar image",
		ArgsUsage: "<animation>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "avatar", Usage: "avatar image (png or jpeg)", Required: true},
			&cli.StringFlag{Name: "out", Usage: "output file (defaults to <animation>.gif)"},
			&cli.StringFlag{Name: "assets", Usage: "overlay sprite directory", Value: "images"},
			&cli.StringFlag{Name: "format", Usage: "gif or apng", Value: "gif"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("animation name required, one of: %s",
					strings.Join(anim.Names(), ", "))
			}

			avatar, err := readImage(cmd.String("avatar"))
			if err != nil {
				return err
			}
			provider := assets.NewDir(cmd.String("assets"))

			out := cmd.String("out")
			switch cmd.String("format") {
			case "gif":
				if out == "" {
					out = name + ".gif"
				}
				blob, err := anim.Compose(name, avatar, provider)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, blob, 0o644); err != nil {
					return err
				}
				log.Printf("wrote %s (%s)", out, humanize.Bytes(uint64(len(blob))))
			case "apng":
				if out == "" {
					out = name + ".png"
				}
				spec, err := anim.Lookup(name)
				if err != nil {
					return err
				}
				seq, err := spec.Render(avatar, provider)
				if err != nil {
					return err
				}
				frames := make([]image.Image, len(seq.Frames))
				for i, m := range seq.Frames {
					frames[i] = m
				}
				apng.Save(out, frames, uint16(seq.Duration(0)/10))
				fi, err := os.Stat(out)
				if err != nil {
					return err
				}
				log.Printf("wrote %s (%s)", out, humanize.Bytes(uint64(fi.Size())))
			default:
				return fmt.Errorf("unknown format %q", cmd.String("format"))
			}
			return nil
		},
	}
}

func animationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "animations",
		Usage: "list the available animations",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range anim.Names() {
				spec, _ := anim.Lookup(name)
				fmt.Printf("%-10s %2d frames  %3dx%-3d  %dms/frame\n",
					name, spec.Frames, spec.Canvas.X, spec.Canvas.Y, spec.Duration)
			}
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP rendering service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (overrides TOCKAR_ADDR)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if addr := cmd.String("addr"); addr != "" {
				cfg.Addr = addr
			}
			srv := server.New(cfg, assets.NewDir(cfg.AssetsDir))
			return srv.ListenAndServe()
		},
	}
}

func readImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return m, nil
}
