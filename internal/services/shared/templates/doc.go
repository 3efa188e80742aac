// Package templates holds the console chrome shared by every page: the HTML
// document, header navigation, footer, breadcrumbs and loading indicator.
package templates
