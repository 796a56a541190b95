package domain

// TenantScoped marks an aggregate or entity as belonging to a tenant. The
// persistence layer consumes it to apply data-isolation filtering; the domain
// layer only exposes the identifier, it never enforces isolation itself.
type TenantScoped interface {
	TenantID() TenantID
}
