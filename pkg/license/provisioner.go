// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"

	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/tracing"
)

// ProvisioningStoreInterface is the registry of (tenant, application) pairs
// whose resources have been set up.
type ProvisioningStoreInterface interface {
	IsProvisioned(ctx context.Context, tenantID int64, applicationID string) (bool, error)
	MarkProvisioned(ctx context.Context, tenantID int64, applicationID string) error
}

// RegistryProvisioner provisions tenant application resources and records
// completion in the provisioning registry. MarkProvisioned is an upsert, so
// concurrent grants for the same pair converge on one registry row.
type RegistryProvisioner struct {
	store  ProvisioningStoreInterface
	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewRegistryProvisioner(store ProvisioningStoreInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *RegistryProvisioner {
	return &RegistryProvisioner{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (p *RegistryProvisioner) IsProvisioned(ctx context.Context, tenantID int64, applicationID string) (bool, error) {
	ctx, span := p.tracer.Start(ctx, "license.RegistryProvisioner.IsProvisioned")
	defer span.End()

	return p.store.IsProvisioned(ctx, tenantID, applicationID)
}

func (p *RegistryProvisioner) Provision(ctx context.Context, tenantID int64, applicationID string) error {
	ctx, span := p.tracer.Start(ctx, "license.RegistryProvisioner.Provision")
	defer span.End()

	if err := p.store.MarkProvisioned(ctx, tenantID, applicationID); err != nil {
		return err
	}

	p.logger.Debugf("registered provisioning for tenant %d application %s", tenantID, applicationID)
	return nil
}
