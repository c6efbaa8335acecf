// Package render instantiates the handlebars templates of a template
// directory against a resolved DataSet.
//
// Every `*.hbs` file of the directory is a template registered under its
// relative path without the extension. The name itself may hold
// placeholders: `src/{{proj-path}}/main.rs` lands under the project's path
// variant, `{{mod}}/mod.rs` is instantiated once per value of the `mod`
// multi-value argument (fanout). Names starting with '!' stand for hidden
// files and directories, see Unescape.
package render
