package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/qumopa/qumopa/core/errs"
)

// checkRequires fails when the running version does not satisfy the config's
// requires constraint. Development builds without a version are let through.
func checkRequires(constraint string, version string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errs.Wrapf(errs.KindConfigImport, err, "Invalid requires constraint %q", constraint)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		log.Debugf("Not checking requires %q against version %q", constraint, version)
		return nil
	}

	if !c.Check(v) {
		return errs.New(errs.KindConfigImport, fmt.Sprintf("Configuration requires qumopa %s, this is %s", constraint, v))
	}

	return nil
}
