// Package directory holds the fixed reference data of the site: the
// Australian states and territories and the practice areas a page can be
// generated for. All lookups are exact and case-sensitive, and none of them
// fail: unknown input simply reports ok=false.
package directory
