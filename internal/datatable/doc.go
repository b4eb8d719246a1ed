// Package datatable implements the central registry for one load session.
//
// A Table owns one category per record kind (a mapping from record name to
// the record itself), the list of outstanding named references issued during
// conversion, and the list of external-resource claims filed by record
// fields. Records are registered as mods are converted, in load order;
// references may name records that do not exist yet. Once every mod has been
// converted the caller runs the batch validation passes, which confirm that
// every still-live reference resolves and hand the resource claims to an
// injected validator.
//
// The Table is created empty per session and is passed explicitly through
// the whole load; there is no package-level registry.
package datatable
