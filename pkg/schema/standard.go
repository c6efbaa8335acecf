package schema

// Names of the standard arguments every template accepts
const (
	ArgIdea   = "idea"
	ArgCode   = "code"
	ArgDry    = "dry"
	ArgReadme = "readme"
	ArgForce  = "force"
)

// ProjectNameArg is the positional argument holding the project name
const ProjectNameArg = "project-name"

// ProjectNameAbout describes the positional project name
const ProjectNameAbout = "name of generated project"

// Standard returns the arguments available on every template. They come
// before any template argument when resolving.
func Standard() *Schema {
	return New(
		Definition{
			Name:  ArgIdea,
			About: "Opens project in IntelliJ",
			Kind:  Flag{},
		},
		Definition{
			Name:  ArgCode,
			About: "Opens project in Visual Studio Code",
			Kind:  Flag{},
		},
		Definition{
			Name:  ArgDry,
			About: "Deletes the project just before exiting",
			Kind:  Flag{},
		},
		Definition{
			Name:  ArgReadme,
			About: "Also render any 'README.md' in generated project",
			Kind:  Flag{},
		},
		Definition{
			Name:  ArgForce,
			About: "Erases existing project with same name if any",
			Short: "f",
			Kind:  Flag{},
		},
	)
}

// WithStandard returns the schema resolved for a template: the standard
// arguments followed by the template's effective schema.
func WithStandard(template *Schema) *Schema {
	return Merge(Standard(), template)
}
