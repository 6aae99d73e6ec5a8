// Maintenance CLI for the asset snapshot. Invoked ad hoc during catalog
// rebuilds, never by the serving path.
//
//	tools validate [assets.json]        check the snapshot parses
//	tools fix-categories [assets.json]  rewrite legacy category labels
//	tools dedupe [imagesDir]            report images with identical content
//	tools describe [assets.json]        author missing descriptions via LLM
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"gxprime/internal/maintenance"
	"gxprime/internal/services"
)

const defaultAssetsPath = "data/assets.json"
const defaultImagesDir = "public/assets/images"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	arg := ""
	if len(os.Args) > 2 {
		arg = os.Args[2]
	}

	switch cmd {
	case "validate":
		runValidate(pathOr(arg, defaultAssetsPath))
	case "fix-categories":
		runFixCategories(pathOr(arg, defaultAssetsPath))
	case "dedupe":
		runDedupe(pathOr(arg, defaultImagesDir))
	case "describe":
		runDescribe(pathOr(arg, defaultAssetsPath))
	default:
		usage()
		os.Exit(2)
	}
}

func pathOr(arg, fallback string) string {
	if arg != "" {
		return arg
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tools <validate|fix-categories|dedupe|describe> [path]")
}

func runValidate(path string) {
	err := maintenance.ValidateFile(path)
	if err == nil {
		log.Info().Str("path", path).Msg("JSON is valid")
		return
	}

	var ve *maintenance.ValidationError
	if errors.As(err, &ve) {
		log.Error().Int("line", ve.Line).Msg(ve.Error())
		if ve.Context != "" {
			fmt.Fprintln(os.Stderr, "--- Context around error ---")
			fmt.Fprintln(os.Stderr, ve.Context)
		}
	} else {
		log.Error().Err(err).Str("path", path).Msg("Validation failed")
	}
	os.Exit(1)
}

func runFixCategories(path string) {
	changed, err := maintenance.FixCategories(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to fix categories")
	}
	log.Info().Str("path", path).Int("updated", changed).Msg("Categories normalized")
}

func runDedupe(dir string) {
	groups, err := maintenance.FindDuplicates(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("Failed to scan for duplicates")
	}

	if len(groups) == 0 {
		log.Info().Str("dir", dir).Msg("No duplicate images found")
		return
	}

	for _, g := range groups {
		fmt.Printf("%s\n", g.Hash)
		for _, p := range g.Paths {
			fmt.Printf("  %s\n", p)
		}
	}
	log.Warn().Int("groups", len(groups)).Msg("Duplicate images found")
}

func runDescribe(path string) {
	changed, err := maintenance.FillDescriptions(context.Background(), path, services.LLMDescribe)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to author descriptions")
	}
	log.Info().Str("path", path).Int("updated", changed).Msg("Descriptions authored")
}
