package powmem

// flagPoints places one flag per country at a representative geohash. The
// entry without a country code is the pirate flag, parked in the Pacific.
var flagPoints = []struct {
	country string // ISO 3166-1 alpha-2
	geohash string
}{
	{"AC", "7wtfc36k7311"}, {"AD", "sp91fdh1hs8k"}, {"AE", "thnm324z28tz"}, {"AF", "tw01hf2vt6g3"},
	{"AG", "deh11cc4re8k"}, {"AI", "de5psufyen52"}, {"AL", "srq64gwp77nk"}, {"AM", "tp05by7g6jeg"},
	{"AO", "kqh8q8x7s13g"}, {"AQ", "d00000000000"}, {"AR", "69y7pkxff4gc"}, {"AS", "2jrnbd192kuc"},
	{"AT", "u2edk85115y4"}, {"AU", "qgx0hnujcy27"}, {"AW", "d6nppz6ssqnn"}, {"AX", "u6wnm5nj5j7x"},
	{"AZ", "tp5myu215xkz"}, {"BA", "sru9f69s8vh7"}, {"BB", "ddmej1cunchp"}, {"BD", "wh0r3qs35cw7"},
	{"BE", "u151710b3yyw"}, {"BF", "efnvs7yvk06x"}, {"BG", "sx8dfsy"}, {"BH", "theuq9k98ch6"},
	{"BI", "kxmkbcfq2bsf"}, {"BJ", "s19suwqm6119"}, {"BL", "ddgr4pyhjupw"}, {"BM", "dt9zy3rns6qt"},
	{"BN", "w8c9f9whj1jw"}, {"BO", "6mpe3fmn9q87"}, {"BQ", "d6pmqkkjbffu"}, {"BR", "6vjyjr7428nh"},
	{"BS", "dk2yqv3er7zb"}, {"BT", "tuzkt0b9cdxk"}, {"BV", "u4f7hb8nybjt"}, {"BW", "ks18cxnzpcgt"},
	{"BY", "u9e9e98dm27k"}, {"BZ", "d50cgcqdqv95"}, {"CA", "f244mkwzrmk9"}, {"CC", "mjz6zc867uv2"},
	{"CD", "krr3p0u5nqqd"}, {"CF", "s3jjwed8kn27"}, {"CG", "krgq8nmru1sx"}, {"CH", "u0m636zpbcpc"},
	{"CI", "eck4cu8exjy7"}, {"CK", "2hppntbx22nn"}, {"CL", "66jc8m77rmc3"}, {"CM", "s28jvsx84r5q"},
	{"CN", "wx4g0bm6c408"}, {"CO", "d2g6f3qmdzxh"}, {"CP", "dezuwjygz2zm"}, {"CR", "d1u0qxq7q7gp"},
	{"CU", "dhj7mxwqrp7d"}, {"CV", "e6xjyz50ncp1"}, {"CW", "d6nvnp7j03z7"}, {"CX", "6w5u8fhdbscd"},
	{"CY", "swpzbdwfj5s1"}, {"CZ", "u2fkbecqcjgb"}, {"DE", "u33dc0cppjs7"}, {"DJ", "sfng60dq5n6m"},
	{"DK", "u3butzxby979"}, {"DM", "ddsreqpn63sh"}, {"DO", "d7q686tr7797"}, {"DZ", "snd3hfudmhfh"},
	{"EC", "6r8jw6tkrxxd"}, {"EE", "ud3t76cn2etg"}, {"EG", "stq4yv3jkd44"}, {"EH", "sf9yqg763t70"},
	{"ER", "sfew7gr6kj38"}, {"ES", "ezjmgtwuzjwe"}, {"ET", "sces1by96pw3"}, {"EU", "u0wucrykkwgr"},
	{"FI", "ue423bvq08ck"}, {"FJ", "ruye5zqgznzm"}, {"FK", "2hvbc3rtt2sk"}, {"FM", "x3741zg9rbhv"},
	{"FO", "gg504enyx2uk"}, {"FR", "u09tvw0f64r7"}, {"GA", "s20k84m9yss1"}, {"GB", "gcpvj0eh6eq9"},
	{"GD", "ddhkgmxpdrk1"}, {"GE", "szrv76120d38"}, {"GF", "dbdnrh4uxhh7"}, {"GG", "gby0veyw3xz3"},
	{"GH", "ebzzgu07bt6h"}, {"GI", "eykjw5jxkj6t"}, {"GL", "gh9xytb6zygr"}, {"GM", "edmh7x782f45"},
	{"GN", "ecc0e6e1kf4y"}, {"GP", "dffhx0fyrpu2"}, {"GQ", "s0r33ssbe7mj"}, {"GR", "swbb5ftzdvd2"},
	{"GS", "5nmf2e2sx54h"}, {"GT", "9fz9u3qcs3eu"}, {"GU", "x4quqz7w9z0j"}, {"GW", "edj5nsccx11m"},
	{"GY", "d8y5ehb3fu4p"}, {"HK", "wecpkthh2pd1"}, {"HM", "rs390dkzeh03"}, {"HN", "d4dwmwbsd4fq"},
	{"HR", "u24b9fhq99m7"}, {"HT", "d7kecvwe3010"}, {"HU", "u2mw1q8xkf61"}, {"IC", "ethbvwk4db3x"},
	{"ID", "qqguwvtzpgcc"}, {"IE", "gc7x9813h7tc"}, {"IL", "sv9h9r1zf8mg"}, {"IM", "gcsu892hjtff"},
	{"IN", "ttng692md2nf"}, {"IO", "2m2qv1952vkh"}, {"IQ", "svzt98f7j53u"}, {"IR", "tjy0mxq6jndq"},
	{"IS", "ge83tf0mkzed"}, {"IT", "sr2yjyx33xus"}, {"JE", "gbwrzx0n9j5e"}, {"JM", "d71rh2cb4dng"},
	{"JO", "sv9tcfy9kwbu"}, {"JP", "xn774c06kt10"}, {"KE", "kzf0tuuburne"}, {"KG", "txm4mm5102uu"},
	{"KH", "w64xmps09230"}, {"KI", "80pxx3cvfz81"}, {"KM", "mjcu3wjp1gd1"}, {"KN", "de56em6bskhd"},
	{"KP", "wz4tmxdhbwmu"}, {"KR", "wydveqv08x1t"}, {"KW", "tj1yb2p1n0uj"}, {"KY", "de7vbgu"},
	{"KZ", "v2x94vsq7npx"}, {"LA", "w78buqdzq685"}, {"LB", "sy188541ujmp"}, {"LC", "ddkxhkh"},
	{"LI", "u0qu36q1bgwt"}, {"LK", "tc3ky120pk5q"}, {"LR", "ec1k96jwksxn"}, {"LS", "kdspd3xjfdd4"},
	{"LT", "u9c3zg7901e9"}, {"LU", "u0u77kx7nhcp"}, {"LV", "ud17xfee8jgw"}, {"LY", "sksmb41m06rw"},
	{"MA", "evdsg7920f6v"}, {"MC", "spv2bdmfdu8q"}, {"MD", "u8kjtx42ddfd"}, {"ME", "srtfbyuh0nxx"},
	{"MF", "s4fsxbyqrrg2"}, {"MG", "mh9kde1h9njc"}, {"MH", "xc2bx6nrzxgn"}, {"MK", "srrkwyd7wjny"},
	{"ML", "egj5vndh9zck"}, {"MM", "w5uhxt9p0gg3"}, {"MN", "y23fe54cg7pv"}, {"MO", "webwrc0hu9s7"},
	{"MP", "x4xtcsmp8uw3"}, {"MQ", "ddse737scj6m"}, {"MR", "eg8px035uukh"}, {"MS", "de5fbbsd8scd"},
	{"MT", "sq6hrn5z55e1"}, {"MU", "mk2ujxsjzrq9"}, {"MV", "t8s60xp99t0w"}, {"MW", "kv8kse1s4gkh"},
	{"MX", "9g3w81t7j50q"}, {"MY", "w28xbw2xbq5d"}, {"MZ", "ku9mb6pb7tmf"}, {"NA", "k7vjku8q391t"},
	{"NC", "rsn9r5pzx34w"}, {"NE", "s5jspvkuv7b6"}, {"NF", "r8xrmfkbspt3"}, {"NG", "s1w5tmm1vhu"},
	{"NI", "d473jn442k6s"}, {"NL", "u173zmtys2gg"}, {"NO", "u4y008wfgtve"}, {"NP", "tv5cd31hr30b"},
	{"NR", "rxyth8z4rpj8"}, {"NU", "rdydz1rcp6d8"}, {"NZ", "rbsr7dk08zd9"}, {"OM", "t7cdjjj"},
	{"PA", "d1x2wd38yegj"}, {"PE", "6q35wz50uwkx"}, {"PF", "2svg2jt231p3"}, {"PG", "rqbs5f6j0c2f"},
	{"PH", "wdq9709jey5e"}, {"PK", "tt3kccxscyq6"}, {"PL", "u3qcnhhs59zb"}, {"PM", "fbr541922uru"},
	{"PN", "35e3rkzg7k31"}, {"PR", "de0xssyxf5q9"}, {"PS", "sv9jcb8p11f1"}, {"PT", "eyckrcntwxuk"},
	{"PW", "wcrdy2pcrwck"}, {"PY", "6ey6wh6t8c20"}, {"QA", "ths2hxwyrm61"}, {"RE", "mhprzu07euj6"},
	{"RO", "u81v25sq895r"}, {"RS", "srywc9q8751q"}, {"RU", "ucfv0n031d7w"}, {"RW", "kxthzyc8bmf7"},
	{"SA", "th0pcu39mqrz"}, {"SB", "rw390shcep0q"}, {"SC", "mppmqspemem6"}, {"SD", "sdz0hvv6hevj"},
	{"SE", "u6sce0t4hzhe"}, {"SG", "w21zdqpk89ty"}, {"SH", "5wmg3bkn7fg0"}, {"", "1n7"},
}
