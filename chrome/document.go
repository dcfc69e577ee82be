// Package chrome exposes a live page driven over the DevTools protocol as a
// dom.Document. Calls must happen inside a chromedp action, the context
// carries the target executor.
package chrome

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	cdpdom "github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/go-json-experiment/json"
	"github.com/kovetskiy/terminalize/dom"
	"github.com/reconquest/karma-go"
)

const objectGroup = "terminalize"

type Document struct {
	ctx  context.Context
	root runtime.RemoteObjectID
}

var _ dom.Document = (*Document)(nil)

func NewDocument(ctx context.Context) (*Document, error) {
	object, exception, err := runtime.Evaluate("document").
		WithObjectGroup(objectGroup).
		Do(ctx)
	if err := check(exception, err); err != nil {
		return nil, karma.Format(err, "unable to get document handle")
	}

	if object.ObjectID == "" {
		return nil, errors.New("page has no document")
	}

	return &Document{ctx: ctx, root: object.ObjectID}, nil
}

func (document *Document) QueryAll(selector string) ([]dom.Element, error) {
	return document.queryAll(document.root, selector)
}

// Release frees every handle handed out by the document.
func (document *Document) Release() error {
	return runtime.ReleaseObjectGroup(objectGroup).Do(document.ctx)
}

func (document *Document) queryAll(
	object runtime.RemoteObjectID,
	selector string,
) ([]dom.Element, error) {
	array, err := document.handle(object, scriptQueryAll, selector)
	if err != nil {
		return nil, karma.Describe("selector", selector).
			Format(err, "unable to query elements")
	}

	return document.elements(array)
}

// elements resolves a handle to a JS array of nodes.
func (document *Document) elements(array runtime.RemoteObjectID) ([]dom.Element, error) {
	var length int
	err := document.value(array, scriptLength, &length)
	if err != nil {
		return nil, err
	}

	elements := make([]dom.Element, 0, length)
	for index := 0; index < length; index++ {
		id, err := document.handle(array, scriptIndex, index)
		if err != nil {
			return nil, err
		}

		element, err := document.element(id)
		if err != nil {
			return nil, err
		}

		elements = append(elements, element)
	}

	return elements, nil
}

func (document *Document) element(id runtime.RemoteObjectID) (*Element, error) {
	node, err := cdpdom.DescribeNode().WithObjectID(id).Do(document.ctx)
	if err != nil {
		return nil, karma.Format(err, "unable to describe node")
	}

	return &Element{
		document: document,
		id:       id,
		key:      strconv.FormatInt(int64(node.BackendNodeID), 10),
		tag:      node.NodeName,
	}, nil
}

// handle calls the script and returns a handle to the resulting object, an
// empty id stands for null or undefined.
func (document *Document) handle(
	object runtime.RemoteObjectID,
	script string,
	args ...any,
) (runtime.RemoteObjectID, error) {
	result, err := document.call(object, script, false, args...)
	if err != nil {
		return "", err
	}

	return result.ObjectID, nil
}

// value calls the script and decodes its JSON result into target, target
// may be nil for scripts called for their side effects.
func (document *Document) value(
	object runtime.RemoteObjectID,
	script string,
	target any,
	args ...any,
) error {
	result, err := document.call(object, script, true, args...)
	if err != nil {
		return err
	}

	if target == nil || len(result.Value) == 0 {
		return nil
	}

	err = json.Unmarshal([]byte(result.Value), target)
	if err != nil {
		return karma.Format(err, "unable to decode script result")
	}

	return nil
}

func (document *Document) call(
	object runtime.RemoteObjectID,
	script string,
	byValue bool,
	args ...any,
) (*runtime.RemoteObject, error) {
	declaration, err := bind(script, args...)
	if err != nil {
		return nil, err
	}

	result, exception, err := runtime.CallFunctionOn(declaration).
		WithObjectID(object).
		WithObjectGroup(objectGroup).
		WithReturnByValue(byValue).
		Do(document.ctx)
	if err := check(exception, err); err != nil {
		return nil, err
	}

	return result, nil
}

// bind wraps the script into a function declaration that applies it to
// args, which are embedded as JSON literals.
func bind(script string, args ...any) (string, error) {
	if args == nil {
		args = []any{}
	}

	literal, err := json.Marshal(args)
	if err != nil {
		return "", karma.Format(err, "unable to encode script arguments")
	}

	return fmt.Sprintf(
		"function() { return (%s).apply(this, %s); }",
		script,
		literal,
	), nil
}

func check(exception *runtime.ExceptionDetails, err error) error {
	if err != nil {
		return err
	}

	if exception == nil {
		return nil
	}

	message := exception.Text
	if exception.Exception != nil && exception.Exception.Description != "" {
		message = exception.Exception.Description
	}

	return karma.Describe("line", exception.LineNumber).
		Describe("column", exception.ColumnNumber).
		Format(errors.New(message), "script failed")
}
