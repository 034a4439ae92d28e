// Package cleaner rewrites the info.yml and gt.yml files of a pose dataset in place so that stricter YAML readers accept them.
// A YAML 1.0 document header is inserted, numeric keys get a category prefix, and the cam_R_m2c key loses its list marker.
// The rewrite is destructive: there is no backup and no atomic replace.
package cleaner
