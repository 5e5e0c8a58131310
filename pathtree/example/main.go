package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/aglyzov/go-pathtree/pathtree"
)

type Rule struct {
	Path  []string `yaml:"path"`
	Value string   `yaml:"value"`
}

type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

var defaultRules = RuleSet{
	Rules: []Rule{
		{Path: []string{"static"}, Value: "cdn"},
		{Path: []string{"api", "v1", "users"}, Value: "users-v1"},
		{Path: []string{"api", "v2", "users"}, Value: "users-v2"},
		{Path: []string{"api", "v2", "orders"}, Value: "orders-v2"},
		{Path: []string{"api", "v1"}, Value: "legacy-v1"},
	},
}

func main() {
	var (
		rulesFile = pflag.StringP("rules", "r", "", "YAML file with the lookup rules (built-in rules if empty)")
		sep       = pflag.StringP("sep", "s", "/", "path separator used in queries")
		debug     = pflag.BoolP("debug", "d", false, "log every rule and dump the tree")
	)

	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules, err := loadRules(*rulesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load rules")
	}

	tree := buildTree(rules)

	log.Info().Int("rules", len(rules.Rules)).Int("paths", tree.Len()).Msg("Tree built")

	if *debug {
		tree.DebugDump(os.Stderr)
	}

	resolve(os.Stdout, tree, pflag.Args(), *sep)
}

func loadRules(name string) (*RuleSet, error) {
	if name == "" {
		return &defaultRules, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rules file")
	}
	defer f.Close()

	var rules RuleSet

	if err := yaml.NewDecoder(f).Decode(&rules); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", name)
	}

	return &rules, nil
}

func buildTree(rules *RuleSet) *pathtree.Tree[string, string] {
	tree := pathtree.New[string, string]()

	for _, rule := range rules.Rules {
		log.Debug().Strs("path", rule.Path).Str("value", rule.Value).Msg("Inserting rule")

		tree.Insert(rule.Path, rule.Value)
	}

	return tree
}

func resolve(w io.Writer, tree *pathtree.Tree[string, string], queries []string, sep string) {
	for _, query := range queries {
		if val, ok := tree.Find(splitPath(query, sep)); ok {
			fmt.Fprintf(w, "%s -> %s\n", query, val)
		} else {
			fmt.Fprintf(w, "%s -> <none>\n", query)
		}
	}
}

// splitPath turns "/api/v2/users/" into [api v2 users].
func splitPath(query, sep string) []string {
	if sep == "" {
		return strings.Fields(query)
	}

	query = strings.Trim(query, sep)
	if query == "" {
		return nil
	}

	return strings.Split(query, sep)
}
