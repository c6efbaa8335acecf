// Package schema models the declarative arguments a template accepts.
//
// A template library root and each template directory may carry a zr.toml
// (or zr.yaml) file with one table per argument:
//
//	[spring-boot-version]
//	about = 'Spring Boot version'
//	short = 's'
//	kind = { ARG = { default = '2.4.0', possible-values = ['2.4.0', '2.4.1'] } }
//
//	[with-kafka]
//	kind = { FLAG = { negate = true } }
//
//	[modules]
//	kind = { MULTI = { default = ['api', 'error'] } }
//
//	[gradle-wrapper]
//	kind = { CMD = { order = 1, default = true, cmd = 'gradle wrapper' } }
//
// A missing kind means ARG. The root file is the ancestor of every template:
// a template's effective schema is Merge(root, local), local entries winning.
package schema
