package service

import (
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/api/metrics"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/policy"
)

// authorize resolves the requester's effective role in p and asks the policy.
// target and newRole are only read by policy.UpdateRole.
func authorize(log zerolog.Logger, p *domain.Project, requesterID primitive.ObjectID, action policy.Action, target, newRole domain.Role) error {
	role := p.EffectiveRoleOf(requesterID)
	d := policy.Decide(role, action, target, newRole)
	if d.Allowed {
		metrics.PolicyDecisionsTotal.WithLabelValues(string(action), "allow").Inc()
		return nil
	}

	metrics.PolicyDecisionsTotal.WithLabelValues(string(action), "deny").Inc()
	log.Debug().
		Str("action", string(action)).
		Str("project_id", p.ID.Hex()).
		Str("requester_id", requesterID.Hex()).
		Str("effective_role", role.String()).
		Str("reason", d.Reason).
		Msg("policy denied")
	return domain.Forbidden(d.Reason)
}
