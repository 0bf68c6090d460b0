package image

import (
	"fmt"
	"strconv"
	"strings"
)

// Render produces the Dockerfile for the definition. Steps are emitted
// in a fixed order with dependency layers ahead of source copies so
// rebuilds reuse the package install layers.
func Render(def Definition) (string, error) {
	if err := def.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "FROM %s\n", def.BaseImage)

	if def.WorkDir != "" {
		fmt.Fprintf(&sb, "\nWORKDIR %s\n", def.WorkDir)
	}

	if len(def.SystemPackages) > 0 {
		if def.BuildUser != "" {
			fmt.Fprintf(&sb, "\nUSER %s\n", def.BuildUser)
		}
		fmt.Fprintf(&sb, "\nRUN apt-get update \\\n"+
			"    && apt-get install -y --no-install-recommends %s \\\n"+
			"    && rm -rf /var/lib/apt/lists/*\n",
			strings.Join(def.SystemPackages, " "),
		)
		if def.RuntimeUser != "" {
			fmt.Fprintf(&sb, "\nUSER %s\n", def.RuntimeUser)
		}
	}

	if def.Requirements != "" {
		fmt.Fprintf(&sb, "\nCOPY %s .\n", def.Requirements)
		fmt.Fprintf(&sb, "RUN pip install --no-cache-dir -r %s\n", def.Requirements)
	}

	if len(def.Copy) > 0 {
		sb.WriteString("\n")
		for _, step := range def.Copy {
			fmt.Fprintf(&sb, "COPY %s %s\n", step.Source, step.Target)
		}
	}

	if len(def.Env) > 0 {
		sb.WriteString("\n")
		for _, env := range def.Env {
			fmt.Fprintf(&sb, "ENV %s=%s\n", env.Name, env.Value)
		}
	}

	if def.Expose != 0 {
		fmt.Fprintf(&sb, "\nEXPOSE %d\n", def.Expose)
	}

	if len(def.Command) > 0 {
		fmt.Fprintf(&sb, "\nCMD %s\n", execForm(def.Command))
	}

	return sb.String(), nil
}

// execForm renders a command in Dockerfile exec (JSON array) form
func execForm(command []string) string {
	quoted := make([]string, len(command))
	for i, arg := range command {
		quoted[i] = strconv.Quote(arg)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
