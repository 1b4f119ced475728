// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	intoto "github.com/in-toto/in-toto-golang/in_toto"
	v02 "github.com/in-toto/in-toto-golang/in_toto/slsa_provenance/v0.2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/hash"
)

const (
	BuilderID          = "SonarStepSDK/v0.1"
	provenanceFilename = "sonar-invocation"
)

// Provenance captures the scanner invocation as an in-toto statement:
// the full argument list as invocation parameters and the collected
// report files as materials, digested so the analysis input set can be
// audited later.
func (s *Service) Provenance(args []string) (*intoto.ProvenanceStatement, error) {
	now := time.Now()
	statement := intoto.ProvenanceStatement{
		StatementHeader: intoto.StatementHeader{
			Type:          intoto.StatementInTotoV01,
			PredicateType: v02.PredicateSLSAProvenance,
			Subject:       []intoto.Subject{},
		},
		Predicate: v02.ProvenancePredicate{
			Builder: v02.ProvenanceBuilder{
				ID: BuilderID,
			},
			BuildType: "sonar-qube-runner",
			Invocation: v02.ProvenanceInvocation{
				ConfigSource: v02.ConfigSource{},
				Parameters:   args,
				Environment:  map[string]string{},
			},
			Metadata: &v02.ProvenanceMetadata{
				BuildStartedOn: &now,
				Completeness:   v02.ProvenanceComplete{},
				Reproducible:   false,
			},
			Materials: []v02.ProvenanceMaterial{},
		},
	}

	for _, report := range s.reports.CollectedReports() {
		ch256, err := hash.SHA256ForFile(report)
		if err != nil {
			return nil, errors.Wrapf(err, "hashing collected report %s", report)
		}
		statement.Predicate.Materials = append(
			statement.Predicate.Materials, v02.ProvenanceMaterial{
				URI: "file:" + report,
				Digest: map[string]string{
					"sha256": ch256,
				},
			},
		)
	}

	return &statement, nil
}

// WriteProvenance outputs the invocation attestation to the specified
// directory and returns the file path
func (s *Service) WriteProvenance(args []string, dir string) (string, error) {
	statement, err := s.Provenance(args)
	if err != nil {
		return "", errors.Wrap(err, "generating invocation attestation")
	}
	data, err := json.MarshalIndent(statement, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshalling invocation attestation")
	}

	if dir == "" {
		dir = os.TempDir()
	}
	filename := filepath.Join(
		dir, fmt.Sprintf("%s-%d.json", provenanceFilename, os.Getpid()),
	)
	if err := os.WriteFile(filename, data, os.FileMode(0o644)); err != nil {
		return "", errors.Wrap(err, "writing invocation attestation to file")
	}
	logrus.Infof("Invocation attestation written to %s", filename)
	return filename, nil
}
