// Package curator provides a CLI tool for managing a static-site content
// library. It converts markdown articles into HTML pages via fixed
// templates, regenerates the library index page, selects a featured
// article for the homepage, derives cover-image variants, and minifies
// CSS assets through a remote web service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, imaging/).
package curator
