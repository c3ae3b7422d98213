package index

// SessionPool leases a fixed number of index sessions. Get blocks until a
// session is free; used by the compose phase, which runs after the sweep
// workers have released theirs.
type SessionPool struct {
	sessions chan *Session
}

func NewSessionPool(store *Store, size int) (*SessionPool, error) {
	p := &SessionPool{sessions: make(chan *Session, size)}
	for i := 0; i < size; i++ {
		sess, err := store.Open()
		if err != nil {
			p.Close()
			return nil, err
		}
		p.sessions <- sess
	}
	return p, nil
}

func (p *SessionPool) Get() *Session {
	return <-p.sessions
}

func (p *SessionPool) Put(s *Session) {
	p.sessions <- s
}

func (p *SessionPool) Close() {
	close(p.sessions)
	for s := range p.sessions {
		s.Close()
	}
}
