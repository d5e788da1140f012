// pkg/buildscript/buildscript_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test block location, in-place augmentation and block synthesis

package buildscript_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/gradlepatch/pkg/buildscript"
	"github.com/arthur-debert/gradlepatch/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const injection = `dependencies.add('classpath', 'io.bitrise.trace.plugin:trace-gradle-plugin:0.0.3')`

func spec() buildscript.BlockSpec {
	return buildscript.BlockSpec{
		Injection:    injection,
		Repositories: []string{"google", "mavenCentral"},
		Dialect:      dialect.Groovy,
	}
}

const injected = "buildscript {\n" +
	"    " + injection + "\n" +
	"    repositories {\n" +
	"        google()\n" +
	"        mavenCentral()\n" +
	"    }"

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart int
		wantOK    bool
	}{
		{"same_line", "buildscript {", 0, true},
		{"newline_before_brace", "x\nbuildscript\n\t{\n}", 2, true},
		{"no_space", "buildscript{}", 0, true},
		{"first_of_many", "a\nbuildscript {}\nbuildscript {}", 2, true},
		{"missing", "plugins {\n}", 0, false},
		{"no_brace", "buildscript.repositories", 0, false},
		{"part_of_identifier", "mybuildscript {", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := buildscript.Locate(tt.text, "buildscript")
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, "{", tt.text[end-1:end])
			}
		})
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		name   string
		masked string
		want   string
		wantOK bool
	}{
		{"empty_block", "buildscript {\n}\n", "\n", true},
		{"nested_braces", "buildscript { dependencies { classpath 'a:b:1' } }\ndependencies { x }\n", " dependencies { classpath 'a:b:1' } ", true},
		{"leftmost_only", "buildscript { a }\nbuildscript { b }\n", " a ", true},
		{"unterminated", "buildscript { a {\n", " a {\n", true},
		{"no_block", "dependencies { a }\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := buildscript.Body(tt.masked, buildscript.DefaultKeyword)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteExistingBlock(t *testing.T) {
	content := "\n" +
		"someContent\n" +
		"buildscript {" +
		"%s" +
		"    repositories {\n" +
		"        mavenLocal()\n" +
		"        google()\n" +
		"    }\n" +
		"    dependencies {\n" +
		"        classpath 'com.android.tools.build:gradle:4.0.2'\n" +
		"    }\n" +
		"} " +
		"\nsomeContent"

	got, ok := buildscript.Rewrite(fmt.Sprintf(content, "\n"), spec())
	require.True(t, ok)

	want := fmt.Sprintf(content, strings.TrimPrefix(injected, "buildscript {")+"\n") + "\n"
	assert.Equal(t, want, got)
	assert.Contains(t, got, "buildscript {\n    "+injection)
}

func TestRewriteStripsComments(t *testing.T) {
	content := strings.Join([]string{
		"// top comment",
		"/* buildscript { */",
		"buildscript { // real one",
		"    /* old",
		"       repositories { jcenter() } */",
		"    repositories {",
		"        google()",
		"    }",
		"}",
	}, "\n")

	got, ok := buildscript.Rewrite(content, spec())
	require.True(t, ok)

	want := strings.Join([]string{
		"",
		"",
		injected + " ",
		"    ",
		"",
		"    repositories {",
		"        google()",
		"    }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "//")
	assert.NotContains(t, got, "/*")
}

func TestRewriteIgnoresCommentedOutBlock(t *testing.T) {
	content := "// buildscript {\n/*\nbuildscript {\n}\n*/\nplugins { }\n"

	got, ok := buildscript.Rewrite(content, spec())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestRewriteOnlyFirstBlock(t *testing.T) {
	content := "buildscript {\n}\nbuildscript {\n}\n"

	got, ok := buildscript.Rewrite(content, spec())
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(got, injection))
	assert.Equal(t, 2, strings.Count(got, "buildscript {"))
	assert.True(t, strings.HasPrefix(got, injected))
}

func TestRewriteCustomKeyword(t *testing.T) {
	s := spec()
	s.Keyword = "allprojects"

	got, ok := buildscript.Rewrite("allprojects {\n}\n", s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(got, "allprojects {\n    "+injection))
}

func TestNewBlock(t *testing.T) {
	want := "\nbuildscript {\n" +
		"    " + injection + "\n" +
		"    repositories {\n" +
		"        google()\n" +
		"        mavenCentral()\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, buildscript.NewBlock(spec()))
}

func TestNewBlockCanBeLocated(t *testing.T) {
	appended := "plugins { id 'com.android.application' }" + buildscript.NewBlock(spec())

	start, _, ok := buildscript.Locate(appended, buildscript.DefaultKeyword)
	require.True(t, ok)
	assert.Equal(t, strings.Index(appended, "buildscript"), start)
}
