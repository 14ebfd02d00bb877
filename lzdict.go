// Package lzdict provides an AMD-optimized LZMA dictionary search
// subsystem: a sliding window, CRC-based hash functions, and three
// interchangeable match-finding dictionary layouts (binary tree,
// reference hash chain, and a cache-efficient hash chain tuned for
// AMD EPYC/Zen cache geometries).
package lzdict

import (
	"io"

	"github.com/aocl-go/lzdict/dict"
	"github.com/aocl-go/lzdict/internal/logging"
)

// Version constants.
const (
	Version      = "0.1.0"
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Options configures a MatchFinder; see dict.Options for field semantics.
type Options = dict.Options

// Config is the fully resolved, validated form of Options.
type Config = dict.Config

// Pair is an emitted length/distance match.
type Pair = dict.Pair

// Token is one step of the minimal literal/match encoding used to prove
// match enumerator output correct end-to-end; see dict.Token.
type Token = dict.Token

// GreedyParse and Reconstruct are the encode/decode halves of that
// end-to-end check; see dict.GreedyParse and dict.Reconstruct.
var (
	GreedyParse = dict.GreedyParse
	Reconstruct = dict.Reconstruct
)

// MatchFinder is the assembled dictionary search engine.
type MatchFinder = dict.MatchFinder

// DefaultOptions returns an Options value with every field at its
// "derive from Level" sentinel.
func DefaultOptions() Options { return dict.DefaultOptions() }

// NewConfig resolves and validates opts.
func NewConfig(opts Options) (*Config, error) {
	return dict.NewConfig(opts, logging.NewNop())
}

// New builds a MatchFinder from a resolved Config, ready for Attach.
func New(cfg *Config) (*MatchFinder, error) {
	return dict.New(cfg, logging.NewNop())
}

// Open is the common-case constructor: resolve opts, build a MatchFinder,
// and attach it to r in one call.
func Open(r io.Reader, opts Options) (*MatchFinder, error) {
	cfg, err := NewConfig(opts)
	if err != nil {
		return nil, err
	}
	mf, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := mf.Attach(r); err != nil {
		return nil, err
	}
	return mf, nil
}
