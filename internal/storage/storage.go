package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"compounding-bot/internal/model"
)

// fileData is the on-disk envelope: one mapping from user id to profile,
// loaded wholesale and rewritten wholesale on every mutation.
type fileData struct {
	Users map[int64]*model.Profile `json:"users"`
}

// Storage is a flat JSON-file store. A single coarse mutex serializes every
// read and write across the process; writes go to a temp file in the same
// directory and are renamed into place so a crash mid-write leaves the
// previous file intact.
type Storage struct {
	mu    sync.Mutex
	path  string
	log   *logrus.Logger
	users map[int64]*model.Profile
}

func NewStorage(path string, log *logrus.Logger) *Storage {
	s := &Storage{
		path:  path,
		log:   log,
		users: make(map[int64]*model.Profile),
	}
	s.load()
	return s
}

// load reads the data file. A missing file means an empty store. An
// unreadable or malformed file is quarantined as <path>.corrupt and the
// store starts empty rather than failing.
func (s *Storage) load() {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		s.quarantine(err)
		return
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.quarantine(err)
		return
	}

	if data.Users != nil {
		s.users = data.Users
	}
}

// quarantine moves the unusable data file aside so it survives for
// inspection while the store starts empty.
func (s *Storage) quarantine(cause error) {
	backup := s.path + ".corrupt"
	s.log.WithError(cause).Warnf("data file %s is unusable, moving it to %s and starting empty", s.path, backup)
	if err := os.Rename(s.path, backup); err != nil {
		s.log.WithError(err).Warn("could not preserve corrupt data file")
	}
}

// GetUser never fails: an unknown id yields a defaulted profile.
func (s *Storage) GetUser(userID int64) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.users[userID]; ok {
		return p.Clone()
	}
	return model.DefaultProfile()
}

// UpdateUser applies mutate to the user's profile (created with defaults if
// absent) and persists the whole data set durably before returning.
func (s *Storage) UpdateUser(userID int64, mutate func(*model.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[userID]
	if !ok {
		def := model.DefaultProfile()
		p = &def
		s.users[userID] = p
	}
	mutate(p)

	return s.save()
}

// AllUsers returns a snapshot of every known profile.
func (s *Storage) AllUsers() map[int64]model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]model.Profile, len(s.users))
	for id, p := range s.users {
		out[id] = p.Clone()
	}
	return out
}

// save must be called with the mutex held.
func (s *Storage) save() error {
	raw, err := json.MarshalIndent(fileData{Users: s.users}, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling user data")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp data file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "writing temp data file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "closing temp data file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replacing %s", s.path)
	}
	return nil
}
