package internal

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Options configures code generation and logging
type Options struct {
	// Namespace and Class wrap the generated entry point.
	Namespace string
	Class     string
	// Indent is written once per nesting level.
	Indent string

	Logger logrus.FieldLogger
}

// DefaultOptions returns the options used by Generate.
func DefaultOptions() Options {
	return Options{
		Namespace: "文言文程序",
		Class:     "主類",
		Indent:    "    ",
	}
}

// withDefaults fills every empty field from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Namespace == "" {
		o.Namespace = def.Namespace
	}
	if o.Class == "" {
		o.Class = def.Class
	}
	if o.Indent == "" {
		o.Indent = def.Indent
	}
	if o.Logger == nil {
		logger := logrus.New()
		logger.Out = ioutil.Discard
		o.Logger = logger
	}
	return o
}
