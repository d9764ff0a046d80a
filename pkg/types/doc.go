// Package types defines the conversion rule variant, the Category and Unit
// entities, the Catalog interface, configuration, and the standard errors
// shared by every unitconv package.
package types
