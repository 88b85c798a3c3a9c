package pybind

import (
	"fmt"

	"github.com/go-python/gpython/py"

	"github.com/katalvlaran/kbtool/negative"
	"github.com/katalvlaran/kbtool/sampler"
	"github.com/katalvlaran/kbtool/walk"
)

// ModuleName is the import name of the registered module.
const ModuleName = "kb_tool"

var pyPathSamplerType = py.NewType("PathSampler", "samples relational paths and negative tails from a triple file")

type pyPathSampler struct {
	*sampler.Sampler
}

func (s pyPathSampler) Type() *py.Type {
	return pyPathSamplerType
}

func (s pyPathSampler) M__repr__() (py.Object, error) {
	return py.String(fmt.Sprintf("<PathSampler data_size=%d>", s.DataSize())), nil
}

// Arg 1 (str):   data_path
// Arg 2 (float): mean_path_len
// Arg 3 (int):   max_path_len
// Arg 4 (int):   random_state
func py_NewPathSampler(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 4 {
		return nil, py.ExceptionNewf(py.TypeError, "PathSampler() takes 4 arguments (%d given)", len(args))
	}
	dataPath, err := argString(args, 0, "data_path")
	if err != nil {
		return nil, err
	}
	mean, err := argFloat(args, 1, "mean_path_len")
	if err != nil {
		return nil, err
	}
	maxLen, err := argInt(args, 2, "max_path_len")
	if err != nil {
		return nil, err
	}
	seed, err := argInt(args, 3, "random_state")
	if err != nil {
		return nil, err
	}
	if mean < 0 {
		return nil, py.ExceptionNewf(py.ValueError, "mean_path_len must be >= 0 (got %v)", mean)
	}
	if maxLen < 0 {
		return nil, py.ExceptionNewf(py.ValueError, "max_path_len must be >= 0 (got %d)", maxLen)
	}

	s, err := sampler.Open(dataPath,
		sampler.WithSeed(seed),
		sampler.WithMeanPathLen(mean),
		sampler.WithMaxPathLen(int(maxLen)),
	)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return pyPathSampler{s}, nil
}

func py_PathSampler_DataSize(self py.Object) (py.Object, error) {
	s := self.(pyPathSampler)
	return py.Int(s.DataSize()), nil
}

func py_PathSampler_SamplePath(self py.Object, args py.Tuple) (py.Object, error) {
	s := self.(pyPathSampler)
	p, err := s.SamplePath()
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return tokens(p), nil
}

// withNegative returns a method body drawing one (path, negative) pair.
func withNegative(policy negative.Policy) func(py.Object, py.Tuple) (py.Object, error) {
	return func(self py.Object, args py.Tuple) (py.Object, error) {
		s := self.(pyPathSampler)
		rec, err := s.SamplePathWithNegativeBy(policy)
		if err != nil {
			return nil, py.ExceptionNewf(py.ValueError, "%v", err)
		}
		return py.Tuple{tokens(rec.Path), py.String(rec.Negative)}, nil
	}
}

func tokens(p *walk.Path) py.Tuple {
	out := make(py.Tuple, len(p.Tokens))
	for i, tok := range p.Tokens {
		out[i] = py.String(tok)
	}
	return out
}

func argString(args py.Tuple, i int, name string) (string, error) {
	if s, ok := args[i].(py.String); ok {
		return string(s), nil
	}
	return "", py.ExceptionNewf(py.TypeError, "%s must be str (got %v)", name, args[i].Type().Name)
}

func argFloat(args py.Tuple, i int, name string) (float64, error) {
	switch v := args[i].(type) {
	case py.Float:
		return float64(v), nil
	case py.Int:
		return float64(v), nil
	}
	return 0, py.ExceptionNewf(py.TypeError, "%s must be float (got %v)", name, args[i].Type().Name)
}

func argInt(args py.Tuple, i int, name string) (int64, error) {
	if v, ok := args[i].(py.Int); ok {
		return int64(v), nil
	}
	return 0, py.ExceptionNewf(py.TypeError, "%s must be int (got %v)", name, args[i].Type().Name)
}

func init() {

	/////////////////////////////////
	// PathSampler
	{
		pyPathSamplerType.Dict["data_size"] = &py.Property{
			Fget: py_PathSampler_DataSize,
			Doc:  "number of triples read, duplicates included",
		}
		pyPathSamplerType.Dict["sample_path"] = py.MustNewMethod("sample_path", py_PathSampler_SamplePath, 0, "draws one path as a tuple of tokens")
		pyPathSamplerType.Dict["sample_path_with_negative"] = py.MustNewMethod("sample_path_with_negative", withNegative(negative.Exact), 0, "(path, negative) with a type-matched negative tail")
		pyPathSamplerType.Dict["sample_path_with_negative_uniformly"] = py.MustNewMethod("sample_path_with_negative_uniformly", withNegative(negative.Uniform), 0, "(path, negative) with a uniform negative tail")
		pyPathSamplerType.Dict["sample_path_with_negative_near_miss"] = py.MustNewMethod("sample_path_with_negative_near_miss", withNegative(negative.NearMiss), 0, "(path, negative) with a near-miss negative tail")
		pyPathSamplerType.Dict["sample_path_with_negative_traced"] = py.MustNewMethod("sample_path_with_negative_traced", withNegative(negative.Traced), 0, "(path, negative) excluding every tail the path's relations reach")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("PathSampler", py_NewPathSampler, 0, "PathSampler(data_path, mean_path_len, max_path_len, random_state)"),
		}
		globals := py.StringDict{
			"FORWARD_SUFFIX":  py.String("::-->"),
			"BACKWARD_SUFFIX": py.String("::<--"),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: ModuleName,
				Doc:  "relational path sampling over knowledge-graph triples",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
