// Package document turns program source text (JSON, or its YAML superset)
// into a value.Value tree, and renders a value.Value back to canonical
// JSON.
//
// Parsing uses github.com/goccy/go-yaml's parser/ast packages rather than
// its Unmarshal convenience API, because the evaluator requires
// insertion-order preservation of object keys: decoding into a plain
// map[string]any would discard source order, whereas walking
// ast.MappingNode.Values preserves it.
package document

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// Parse reads src (JSON, or YAML superset) and returns the corresponding
// value.Value tree, preserving Object key order.
func Parse(src []byte) (value.Value, error) {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return value.Value{}, yerr.ErrParse.Wrap(err)
	}

	if len(file.Docs) == 0 {
		return value.Null, nil
	}

	return nodeToValue(file.Docs[0].Body)
}

func nodeToValue(n ast.Node) (value.Value, error) {
	if n == nil {
		return value.Null, nil
	}

	switch tn := n.(type) {
	case *ast.TagNode:
		return nodeToValue(tn.Value)

	case *ast.LiteralNode:
		return nodeToValue(tn.Value)

	case *ast.NullNode:
		return value.Null, nil

	case *ast.BoolNode:
		return value.Bool(tn.Value), nil

	case *ast.IntegerNode:
		return numberFromToken(tn)

	case *ast.FloatNode:
		return numberFromToken(tn)

	case *ast.StringNode:
		return value.String(tn.Value), nil

	case *ast.SequenceNode:
		elems := make([]value.Value, len(tn.Values))

		for i, item := range tn.Values {
			v, err := nodeToValue(item)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = v
		}

		return value.Array(elems), nil

	case *ast.MappingNode:
		obj := value.NewObject()

		for _, mv := range tn.Values {
			k, v, err := mappingEntry(mv)
			if err != nil {
				return value.Value{}, err
			}

			obj.Set(k, v)
		}

		return value.ObjectValue(obj), nil

	case *ast.MappingValueNode:
		obj := value.NewObject()

		k, v, err := mappingEntry(tn)
		if err != nil {
			return value.Value{}, err
		}

		obj.Set(k, v)

		return value.ObjectValue(obj), nil

	default:
		return value.Value{}, yerr.ErrParse.Wrap(
			fmt.Errorf("unsupported node type %T", n))
	}
}

func mappingEntry(mv *ast.MappingValueNode) (string, value.Value, error) {
	key, err := nodeToValue(mv.Key)
	if err != nil {
		return "", value.Value{}, err
	}

	ks, err := key.AsString()
	if err != nil {
		return "", value.Value{}, yerr.ErrParse.Wrap(
			fmt.Errorf("object key must be a string, got %s", key.Kind()))
	}

	v, err := nodeToValue(mv.Value)
	if err != nil {
		return "", value.Value{}, err
	}

	return ks, v, nil
}

// numberFromToken recovers the original literal text of a numeric scalar so
// value.NumberFromLiteral can preserve the source's int/float distinction
// and round-trip exactly.
func numberFromToken(n ast.Node) (value.Value, error) {
	tok := n.GetToken()
	if tok == nil {
		return value.Value{}, yerr.ErrParse.Wrap(fmt.Errorf("numeric node missing token"))
	}

	num, err := value.NumberFromLiteral(tok.Value)
	if err != nil {
		return value.Value{}, err
	}

	return value.NumberValue(num), nil
}
