package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/namelessrealms/launchcore/pkg/libraries"
	"github.com/namelessrealms/launchcore/pkg/parameters"
	"gopkg.in/yaml.v3"
)

func renderLibraries(w io.Writer, artifacts []libraries.Artifact, format string) error {
	switch format {
	case "json":
		return renderJSON(w, artifacts)
	case "yaml":
		return renderYAML(w, artifacts)
	case "table", "":
		return renderLibraryTable(w, artifacts)
	}
	return fmt.Errorf("%w: unknown format %q", errInvalidArgs, format)
}

func renderLaunchSpec(w io.Writer, spec parameters.LaunchSpec, format string) error {
	switch format {
	case "json":
		return renderJSON(w, spec)
	case "yaml":
		return renderYAML(w, spec)
	case "lines", "":
		if _, err := fmt.Fprintf(w, "# natives: %s\n", spec.NativesDir); err != nil {
			return err
		}
		for _, p := range spec.Parameters {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown format %q", errInvalidArgs, format)
}

func renderLibraryTable(w io.Writer, artifacts []libraries.Artifact) error {
	if len(artifacts) == 0 {
		_, _ = fmt.Fprintln(w, "(0 libraries)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Name", "Size", "SHA1"})
	for i, a := range artifacts {
		t.AppendRow(table.Row{i + 1, a.Kind, a.Name, a.Size, a.SHA1})
	}
	t.AppendFooter(table.Row{"", "", "total", libraries.TotalSize(artifacts), ""})
	t.Render()
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
