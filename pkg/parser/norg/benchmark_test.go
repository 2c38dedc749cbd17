package norg_test

import (
	"context"
	"strings"
	"testing"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/parser/norg"
)

var benchDocument = strings.Repeat(`* Project notes
Some *bold* text, a bit of /italic/ and _underlined_ words.
- first item with -struck- text
  ~ nested item ~done~
@mention /broken italic
`, 200)

func BenchmarkLex(b *testing.B) {
	b.SetBytes(int64(len(benchDocument)))

	for range b.N {
		if tokens := norg.Lex(benchDocument); len(tokens) == 0 {
			b.Fail()
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.SetBytes(int64(len(benchDocument)))

	for range b.N {
		if nodes := norg.Parse(benchDocument); len(nodes) == 0 {
			b.Fail()
		}
	}
}

// Benchmark the full snapshot build used by the check command.
func BenchmarkParseFile(b *testing.B) {
	content := []byte(benchDocument)
	ctx := context.Background()
	b.SetBytes(int64(len(content)))

	b.ResetTimer()
	for range b.N {
		snapshot, err := norg.ParseFile(ctx, "bench.norg", content)
		if err != nil || snapshot == nil {
			b.Fail()
		}
	}
}
