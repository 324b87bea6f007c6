package app

import (
	"context"
	"log"

	"blackbox/internal/errors"
	"blackbox/models"
	"blackbox/ports"
)

// ResolverService maps human-readable names onto stable record ids for the
// automated ingestion paths. Resolution is find-or-create: repeated calls for
// the same name converge on one record. The lookup-then-insert is not atomic;
// the unique index on usernames turns a lost race into a conflict, which the
// resolver treats as "re-read and reuse". Project names carry no such index,
// so a concurrent project race can still produce duplicates — accepted for
// low-frequency git-hook traffic.
type ResolverService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
}

// NewResolverService creates a resolver service
func NewResolverService(users ports.UserRepository, projects ports.ProjectRepository) *ResolverService {
	return &ResolverService{users: users, projects: projects}
}

// ResolveActor returns the user with the given username, creating it when
// absent. The first match in insertion order wins.
func (s *ResolverService) ResolveActor(ctx context.Context, username string) (*models.User, error) {
	existing, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := models.NewUser(username)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.HasCode(err, errors.CodeConflict) {
			// Lost the race: someone created the user between our lookup
			// and insert. Re-read and reuse.
			log.Printf("[resolver] user %q created concurrently, re-reading", username)
			return s.findUser(ctx, username)
		}
		return nil, err
	}
	return user, nil
}

// ResolveProject returns the project with the given name, creating it when
// absent. The owner is assigned only when the project is newly created; an
// existing project keeps whatever owner it already has.
func (s *ResolverService) ResolveProject(ctx context.Context, name string, owner *models.User) (*models.Project, error) {
	projects, err := s.projects.List(ctx, ports.ProjectFilter{Name: &name}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(projects) > 0 {
		return projects[0], nil
	}

	actor := "unknown"
	var ownerID *int64
	if owner != nil {
		actor = owner.Username
		ownerID = &owner.ID
	}
	description := "Auto-created for " + actor

	project, err := models.NewProject(name, &description, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ResolverService) findUser(ctx context.Context, username string) (*models.User, error) {
	users, err := s.users.List(ctx, ports.UserFilter{Username: &username}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}
