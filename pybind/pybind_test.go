package pybind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-python/gpython/py"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbtool/negative"
)

const triples = "a\tr1\tb\nb\tr2\tc\nc\tr3\ta\na\tr1\tc\n"

func writeTriples(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.txt")
	require.NoError(t, os.WriteFile(path, []byte(triples), 0o644))
	return path
}

func newSampler(t *testing.T, maxLen int) pyPathSampler {
	t.Helper()
	obj, err := py_NewPathSampler(nil, py.Tuple{py.String(writeTriples(t)), py.Float(1.5), py.Int(maxLen), py.Int(7)})
	require.NoError(t, err)
	s, ok := obj.(pyPathSampler)
	require.True(t, ok)
	return s
}

func TestPathSampler_Methods(t *testing.T) {
	t.Parallel()

	s := newSampler(t, 3)
	assert.Same(t, pyPathSamplerType, s.Type())

	n, err := py.GetAttrString(s, "data_size")
	require.NoError(t, err)
	assert.Equal(t, py.Int(4), n)

	obj, err := py_PathSampler_SamplePath(s, nil)
	require.NoError(t, err)
	path, ok := obj.(py.Tuple)
	require.True(t, ok)
	assert.Equal(t, 1, len(path)%2)
	assert.LessOrEqual(t, len(path), 7)

	for _, name := range []string{
		"data_size",
		"sample_path",
		"sample_path_with_negative",
		"sample_path_with_negative_uniformly",
		"sample_path_with_negative_near_miss",
		"sample_path_with_negative_traced",
	} {
		assert.Contains(t, pyPathSamplerType.Dict, name)
	}

	obj, err = withNegative(negative.Uniform)(s, nil)
	require.NoError(t, err)
	pair := obj.(py.Tuple)
	require.Len(t, pair, 2)
	p := pair[0].(py.Tuple)
	assert.NotEqual(t, p[len(p)-1], pair[1])
}

func TestPathSampler_ArgErrors(t *testing.T) {
	t.Parallel()

	path := writeTriples(t)
	tests := []struct {
		name string
		args py.Tuple
	}{
		{"arity", py.Tuple{py.String(path)}},
		{"path type", py.Tuple{py.Int(1), py.Float(1.5), py.Int(1), py.Int(0)}},
		{"mean type", py.Tuple{py.String(path), py.String("x"), py.Int(1), py.Int(0)}},
		{"max type", py.Tuple{py.String(path), py.Float(1.5), py.Float(1), py.Int(0)}},
		{"negative mean", py.Tuple{py.String(path), py.Float(-1), py.Int(1), py.Int(0)}},
		{"negative max", py.Tuple{py.String(path), py.Float(1), py.Int(-1), py.Int(0)}},
		{"missing file", py.Tuple{py.String(path + ".nope"), py.Float(1), py.Int(1), py.Int(0)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := py_NewPathSampler(nil, tc.args)
			assert.Error(t, err)
		})
	}

	// an int mean is accepted
	_, err := py_NewPathSampler(nil, py.Tuple{py.String(path), py.Int(2), py.Int(1), py.Int(0)})
	assert.NoError(t, err)
}

func TestPathSampler_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := newSampler(t, 3), newSampler(t, 3)
	for i := 0; i < 20; i++ {
		x, err := py_PathSampler_SamplePath(a, nil)
		require.NoError(t, err)
		y, err := py_PathSampler_SamplePath(b, nil)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

// TestPathSampler_Seeded pins the first draws of fixed seeds.
func TestPathSampler_Seeded(t *testing.T) {
	t.Parallel()

	obj, err := py_NewPathSampler(nil, py.Tuple{py.String(writeTriples(t)), py.Float(1.5), py.Int(1), py.Int(42)})
	require.NoError(t, err)
	s := obj.(pyPathSampler)

	p, err := py_PathSampler_SamplePath(s, nil)
	require.NoError(t, err)
	assert.Equal(t, py.Tuple{py.String("c"), py.String("r3::-->"), py.String("a")}, p)

	pair, err := withNegative(negative.Exact)(s, nil)
	require.NoError(t, err)
	assert.Equal(t, py.Tuple{
		py.Tuple{py.String("b"), py.String("r1::<--"), py.String("a")},
		py.String("c"),
	}, pair)

	p, err = py_PathSampler_SamplePath(newSampler(t, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, py.Tuple{py.String("a"), py.String("r1::-->"), py.String("b"), py.String("r2::-->"), py.String("c")}, p)
}

func TestRun_Script(t *testing.T) {
	data := writeTriples(t)
	script := filepath.Join(t.TempDir(), "check.py")
	src := "import kb_tool\n" +
		"s = kb_tool.PathSampler(" + "'" + data + "'" + ", 1.5, 1, 42)\n" +
		"assert s.data_size == 4\n" +
		"p = s.sample_path()\n" +
		"assert len(p) == 3\n" +
		"path, neg = s.sample_path_with_negative_uniformly()\n" +
		"assert neg != path[-1]\n"
	require.NoError(t, os.WriteFile(script, []byte(src), 0o644))

	require.NoError(t, Run(script))
}

func TestRun_MissingScript(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "absent.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.py")
}
