package main

func lsCommand(opts Options, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewCorpusRepository(&p, opts.Corpus, opts.Encoding)
	if err != nil {
		return err
	}

	entries, err := repo.List()
	if err != nil {
		return err
	}

	return newRenderer(opts, ui).Entries(entries)
}
