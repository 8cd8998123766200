package ahocorasick_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/textmatch/ahocorasick"
)

// benchDictionary builds a deterministic dictionary of n lowercase words
// of length up to maxLen each, for repeatable benchmark input.
func benchDictionary(n, maxLen int) []string {
	rng := rand.New(rand.NewSource(1))
	words := make([]string, n)
	for i := range words {
		l := 1 + rng.Intn(maxLen)
		var sb strings.Builder
		for j := 0; j < l; j++ {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
		words[i] = sb.String()
	}
	return words
}

// benchText builds a deterministic lowercase text of length n.
func benchText(n int) string {
	rng := rand.New(rand.NewSource(2))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + rng.Intn(26)))
	}
	return sb.String()
}

// benchmarkBuild measures automaton construction for a dictionary of n words.
func benchmarkBuild(b *testing.B, n int) {
	words := benchDictionary(n, 8)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := ahocorasick.Build(words); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// benchmarkScan measures one full scan of a text of length m against a
// prebuilt dictionary of n words.
func benchmarkScan(b *testing.B, n, m int) {
	a, err := ahocorasick.Build(benchDictionary(n, 8))
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	text := benchText(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ahocorasick.Scan(a, text); err != nil {
			b.Fatalf("Scan failed: %v", err)
		}
	}
}

// BenchmarkBuild_Small benchmarks construction from 100 words.
func BenchmarkBuild_Small(b *testing.B) { benchmarkBuild(b, 100) }

// BenchmarkBuild_Medium benchmarks construction from 1000 words.
func BenchmarkBuild_Medium(b *testing.B) { benchmarkBuild(b, 1000) }

// BenchmarkBuild_Large benchmarks construction from 10000 words.
func BenchmarkBuild_Large(b *testing.B) { benchmarkBuild(b, 10000) }

// BenchmarkScan_ShortText benchmarks scanning 1 KB of text with 1000 words.
func BenchmarkScan_ShortText(b *testing.B) { benchmarkScan(b, 1000, 1<<10) }

// BenchmarkScan_MediumText benchmarks scanning 64 KB of text with 1000 words.
func BenchmarkScan_MediumText(b *testing.B) { benchmarkScan(b, 1000, 1<<16) }

// BenchmarkScan_LongText benchmarks scanning 1 MB of text with 1000 words.
func BenchmarkScan_LongText(b *testing.B) { benchmarkScan(b, 1000, 1<<20) }
